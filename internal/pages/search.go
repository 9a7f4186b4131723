package pages

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var countRegex = regexp.MustCompile(`\d+`)

// JobSearchPage covers the search-results listing with its filter panel.
type JobSearchPage struct {
	*BasePage

	resultsContainer string
	jobTitles        string
	categoryFilter   string
	locationFilter   string
	experienceFilter string
	sortDropdown     string
	pagination       string
	totalJobsCount   string
}

func NewJobSearchPage(base *BasePage) *JobSearchPage {
	return &JobSearchPage{
		BasePage:         base,
		resultsContainer: ".search-results-container",
		jobTitles:        ".job-title-text",
		categoryFilter:   ".category-filter",
		locationFilter:   ".location-filter",
		experienceFilter: ".experience-filter",
		sortDropdown:     "select.sort-options",
		pagination:       ".pagination",
		totalJobsCount:   ".total-jobs-count",
	}
}

// ResultsCount extracts the total match count from text like
// "1,234 jobs found".
func (p *JobSearchPage) ResultsCount() (int, error) {
	text, err := p.Text(p.totalJobsCount)
	if err != nil {
		return 0, err
	}
	match := countRegex.FindString(strings.ReplaceAll(text, ",", ""))
	if match == "" {
		return 0, nil
	}
	return strconv.Atoi(match)
}

func (p *JobSearchPage) FilterByCategory(category string) error {
	return p.clickFilter(p.categoryFilter, category)
}

func (p *JobSearchPage) FilterByLocation(location string) error {
	return p.clickFilter(p.locationFilter, location)
}

func (p *JobSearchPage) FilterByExperience(experience string) error {
	return p.clickFilter(p.experienceFilter, experience)
}

func (p *JobSearchPage) clickFilter(panel, label string) error {
	locator := fmt.Sprintf("%s label:has-text('%s')", panel, label)
	if err := p.Click(locator); err != nil {
		return err
	}
	return p.WaitForPageLoad()
}

func (p *JobSearchPage) SortBy(option string) error {
	if err := p.SelectOption(p.sortDropdown, option); err != nil {
		return err
	}
	return p.WaitForPageLoad()
}

// JobTitleAt returns the text of the nth job title in the result list.
func (p *JobSearchPage) JobTitleAt(index int) (string, error) {
	title, err := p.Page().Locator(p.jobTitles).Nth(index).TextContent()
	return strings.TrimSpace(title), err
}

// OpenJobByIndex clicks the nth job title in the result list.
func (p *JobSearchPage) OpenJobByIndex(index int) error {
	if err := p.Page().Locator(p.jobTitles).Nth(index).Click(); err != nil {
		return err
	}
	return p.WaitForPageLoad()
}

func (p *JobSearchPage) GoToPage(pageNumber int) error {
	locator := fmt.Sprintf("%s a:has-text('%d')", p.pagination, pageNumber)
	if err := p.Click(locator); err != nil {
		return err
	}
	return p.WaitForPageLoad()
}
