package pages

import "strings"

// ProfilePage covers the logged-in My Bdjobs area.
type ProfilePage struct {
	*BasePage

	profileName       string
	editProfileButton string
	appliedJobsTab    string
	savedJobsTab      string
	logoutButton      string
}

func NewProfilePage(base *BasePage) *ProfilePage {
	return &ProfilePage{
		BasePage:          base,
		profileName:       ".profile-name",
		editProfileButton: "button:has-text('Edit Profile')",
		appliedJobsTab:    "a:has-text('Applied Jobs')",
		savedJobsTab:      "a:has-text('Saved Jobs')",
		logoutButton:      "button:has-text('Logout')",
	}
}

func (p *ProfilePage) Open() error {
	return p.Navigate("my-bdjobs/my-profile")
}

func (p *ProfilePage) ProfileName() (string, error) {
	name, err := p.Text(p.profileName)
	return strings.TrimSpace(name), err
}

func (p *ProfilePage) ClickEditProfile() error {
	if err := p.Click(p.editProfileButton); err != nil {
		return err
	}
	return p.WaitForPageLoad()
}

func (p *ProfilePage) ViewAppliedJobs() error {
	if err := p.Click(p.appliedJobsTab); err != nil {
		return err
	}
	return p.WaitForPageLoad()
}

func (p *ProfilePage) ViewSavedJobs() error {
	if err := p.Click(p.savedJobsTab); err != nil {
		return err
	}
	return p.WaitForPageLoad()
}

func (p *ProfilePage) Logout() error {
	if err := p.Click(p.logoutButton); err != nil {
		return err
	}
	return p.WaitForPageLoad()
}
