package pages

import "strings"

// JobDetailsPage covers a single job posting.
type JobDetailsPage struct {
	*BasePage

	jobTitle    string
	companyName string
	applyButton string
	salaryInfo  string
}

func NewJobDetailsPage(base *BasePage) *JobDetailsPage {
	return &JobDetailsPage{
		BasePage:    base,
		jobTitle:    ".job-title",
		companyName: ".company-name",
		applyButton: "button:has-text('Apply Now')",
		salaryInfo:  ".salary-info",
	}
}

func (p *JobDetailsPage) JobTitle() (string, error) {
	title, err := p.Text(p.jobTitle)
	return strings.TrimSpace(title), err
}

func (p *JobDetailsPage) CompanyName() (string, error) {
	name, err := p.Text(p.companyName)
	return strings.TrimSpace(name), err
}

func (p *JobDetailsPage) ClickApply() error {
	if err := p.Click(p.applyButton); err != nil {
		return err
	}
	return p.WaitForPageLoad()
}

func (p *JobDetailsPage) SalaryVisible() bool {
	return p.IsElementVisible(p.salaryInfo)
}
