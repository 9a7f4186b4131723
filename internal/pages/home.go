package pages

import "fmt"

// HomePage covers the bdjobs.com landing page.
type HomePage struct {
	*BasePage

	searchBox        string
	searchButton     string
	loginLink        string
	registrationLink string
	categoryLinks    string
	featuredJobs     string
}

func NewHomePage(base *BasePage) *HomePage {
	return &HomePage{
		BasePage:         base,
		searchBox:        "input[name='keyword']",
		searchButton:     "button.search-btn",
		loginLink:        "a.loginText",
		registrationLink: "a.signupText",
		categoryLinks:    ".category-name",
		featuredJobs:     ".featured-jobs",
	}
}

func (p *HomePage) Open() error {
	return p.Navigate("")
}

// SearchJob fills the keyword box and submits a search.
func (p *HomePage) SearchJob(keyword string) error {
	if err := p.Fill(p.searchBox, keyword); err != nil {
		return err
	}
	if err := p.Click(p.searchButton); err != nil {
		return err
	}
	return p.WaitForPageLoad()
}

func (p *HomePage) ClickLogin() error {
	if err := p.Click(p.loginLink); err != nil {
		return err
	}
	return p.WaitForPageLoad()
}

func (p *HomePage) ClickRegistration() error {
	if err := p.Click(p.registrationLink); err != nil {
		return err
	}
	return p.WaitForPageLoad()
}

// SelectJobCategory clicks the named category link on the landing page.
func (p *HomePage) SelectJobCategory(category string) error {
	locator := fmt.Sprintf("%s:has-text('%s')", p.categoryLinks, category)
	if err := p.Click(locator); err != nil {
		return err
	}
	return p.WaitForPageLoad()
}

func (p *HomePage) FeaturedJobsVisible() bool {
	return p.IsElementVisible(p.featuredJobs)
}
