//go:build e2e

package e2e

import (
	"sync"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"

	"go-bdjobs-e2e/internal/browser"
	"go-bdjobs-e2e/internal/config"
	"go-bdjobs-e2e/internal/pages"
	"go-bdjobs-e2e/internal/testdata"
)

// One browser process serves the whole run; every test gets its own context
// and page, released via t.Cleanup.
var (
	suiteOnce sync.Once
	suiteCfg  *config.Config
	suiteMgr  *browser.Manager
	suiteErr  error
)

func sharedManager(t *testing.T) *browser.Manager {
	t.Helper()

	suiteOnce.Do(func() {
		suiteCfg = config.Load()
		suiteMgr, suiteErr = browser.NewManager(suiteCfg)
	})
	require.NoError(t, suiteErr, "failed to start browser session")
	return suiteMgr
}

func closeSuite() {
	if suiteMgr != nil {
		suiteMgr.Close()
	}
}

func newPage(t *testing.T) playwright.Page {
	t.Helper()

	ctx, page, err := sharedManager(t).NewPage()
	require.NoError(t, err, "failed to create page")
	t.Cleanup(func() { ctx.Close() })
	return page
}

// site bundles every page object over one shared page handle.
type site struct {
	Home         *pages.HomePage
	Login        *pages.LoginPage
	Search       *pages.JobSearchPage
	Details      *pages.JobDetailsPage
	Registration *pages.RegistrationPage
	Profile      *pages.ProfilePage
}

// openSite creates a fresh page, builds the page objects and lands on the
// home page.
func openSite(t *testing.T) *site {
	t.Helper()

	base := pages.NewBasePage(newPage(t), suiteCfg)
	s := &site{
		Home:         pages.NewHomePage(base),
		Login:        pages.NewLoginPage(base),
		Search:       pages.NewJobSearchPage(base),
		Details:      pages.NewJobDetailsPage(base),
		Registration: pages.NewRegistrationPage(base),
		Profile:      pages.NewProfilePage(base),
	}
	require.NoError(t, s.Home.Open(), "failed to open home page")
	return s
}

func loginAs(t *testing.T, s *site, creds testdata.Credentials) {
	t.Helper()

	require.NoError(t, s.Home.ClickLogin(), "failed to open login page")
	require.NoError(t, s.Login.Login(creds.Email, creds.Password), "login failed")
}

func skipLive(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping live-site test in short mode")
	}
}
