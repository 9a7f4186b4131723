package pages

import (
	"go-bdjobs-e2e/internal/testdata"
)

// RegistrationPage covers the new-account signup form.
type RegistrationPage struct {
	*BasePage

	nameInput            string
	emailInput           string
	passwordInput        string
	confirmPasswordInput string
	mobileInput          string
	genderSelect         string
	registerButton       string
	termsCheckbox        string
	errorMessages        string
}

func NewRegistrationPage(base *BasePage) *RegistrationPage {
	return &RegistrationPage{
		BasePage:             base,
		nameInput:            "input[name='name']",
		emailInput:           "input[name='email']",
		passwordInput:        "input[name='password']",
		confirmPasswordInput: "input[name='confirmPassword']",
		mobileInput:          "input[name='mobile']",
		genderSelect:         "select[name='gender']",
		registerButton:       "button[type='submit']",
		termsCheckbox:        "input[type='checkbox'][name='terms']",
		errorMessages:        ".error-message",
	}
}

func (p *RegistrationPage) Open() error {
	return p.Navigate("register")
}

// RegisterUser fills and submits the registration form.
func (p *RegistrationPage) RegisterUser(user testdata.Registrant) error {
	fields := []struct {
		selector string
		value    string
	}{
		{p.nameInput, user.Name},
		{p.emailInput, user.Email},
		{p.passwordInput, user.Password},
		{p.confirmPasswordInput, user.ConfirmPassword},
		{p.mobileInput, user.Mobile},
	}
	for _, f := range fields {
		if err := p.Fill(f.selector, f.value); err != nil {
			return err
		}
	}

	if err := p.SelectOption(p.genderSelect, user.Gender); err != nil {
		return err
	}

	if user.AcceptTerms {
		if err := p.Page().Locator(p.termsCheckbox).Check(); err != nil {
			return err
		}
	}

	if err := p.Click(p.registerButton); err != nil {
		return err
	}
	return p.WaitForPageLoad()
}

// ErrorMessages collects every validation error currently shown.
func (p *RegistrationPage) ErrorMessages() ([]string, error) {
	locators, err := p.Page().Locator(p.errorMessages).All()
	if err != nil {
		return nil, err
	}

	var errors []string
	for _, locator := range locators {
		text, err := locator.TextContent()
		if err != nil {
			return nil, err
		}
		errors = append(errors, text)
	}
	return errors, nil
}
