package pages

// LoginPage covers the account sign-in form.
type LoginPage struct {
	*BasePage

	emailInput         string
	passwordInput      string
	loginButton        string
	errorMessage       string
	forgotPasswordLink string
}

func NewLoginPage(base *BasePage) *LoginPage {
	return &LoginPage{
		BasePage:           base,
		emailInput:         "input[name='email']",
		passwordInput:      "input[name='password']",
		loginButton:        "button[type='submit']",
		errorMessage:       ".error-message",
		forgotPasswordLink: "a:has-text('Forgot Password')",
	}
}

func (p *LoginPage) Open() error {
	return p.Navigate("login")
}

// Login submits the form with the given credentials and waits for the
// resulting page to settle.
func (p *LoginPage) Login(email, password string) error {
	if err := p.Fill(p.emailInput, email); err != nil {
		return err
	}
	if err := p.Fill(p.passwordInput, password); err != nil {
		return err
	}
	if err := p.Click(p.loginButton); err != nil {
		return err
	}
	return p.WaitForPageLoad()
}

// ErrorMessage returns the login error text, or "" when no error is shown.
func (p *LoginPage) ErrorMessage() (string, error) {
	if !p.IsElementVisible(p.errorMessage) {
		return "", nil
	}
	return p.Text(p.errorMessage)
}

func (p *LoginPage) ClickForgotPassword() error {
	if err := p.Click(p.forgotPasswordLink); err != nil {
		return err
	}
	return p.WaitForPageLoad()
}
