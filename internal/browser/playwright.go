package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"

	"go-bdjobs-e2e/internal/config"
)

// Manager owns the playwright driver and the shared Chromium process.
// One Manager serves a whole test session; contexts are created per test.
type Manager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	cfg     *config.Config
}

func NewManager(cfg *config.Config) (*Manager, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		SlowMo:   playwright.Float(cfg.SlowMoMs),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	logrus.Infof("🚀 Browser launched (headless=%v, slowMo=%.0fms)", cfg.Headless, cfg.SlowMoMs)

	return &Manager{
		pw:      pw,
		browser: browser,
		cfg:     cfg,
	}, nil
}

// NewContext creates an isolated browser context with the session's fixed
// viewport, TLS-error tolerance, video recording and default timeouts.
// The caller owns the context and must Close it when the test is done.
func (m *Manager) NewContext() (playwright.BrowserContext, error) {
	opts := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  m.cfg.ViewportWidth,
			Height: m.cfg.ViewportHeight,
		},
		IgnoreHttpsErrors: playwright.Bool(true),
	}

	if m.cfg.VideoDir != "" {
		opts.RecordVideo = &playwright.RecordVideo{Dir: m.cfg.VideoDir}
	}

	ctx, err := m.browser.NewContext(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}

	ctx.SetDefaultNavigationTimeout(m.cfg.NavigationTimeoutMs)
	ctx.SetDefaultTimeout(m.cfg.NavigationTimeoutMs)

	//seed an authenticated session when a cookie export is configured
	if m.cfg.CookiesPath != "" {
		cookies, err := LoadCookies(m.cfg.CookiesPath)
		if err != nil {
			logrus.Warnf("⚠️ Could not load cookies from %s: %v", m.cfg.CookiesPath, err)
		} else if err := ctx.AddCookies(cookies); err != nil {
			logrus.Warnf("⚠️ Could not add cookies: %v", err)
		} else {
			logrus.Infof("🍪 Loaded %d cookies", len(cookies))
		}
	}

	return ctx, nil
}

// NewPage is a convenience for tests that do not care about the context:
// it creates a fresh context and a page in it.
func (m *Manager) NewPage() (playwright.BrowserContext, playwright.Page, error) {
	ctx, err := m.NewContext()
	if err != nil {
		return nil, nil, err
	}

	page, err := ctx.NewPage()
	if err != nil {
		ctx.Close()
		return nil, nil, fmt.Errorf("failed to create page: %w", err)
	}

	return ctx, page, nil
}

func (m *Manager) Close() error {
	if err := m.browser.Close(); err != nil {
		logrus.Warnf("⚠️ Failed to close browser: %v", err)
	}
	return m.pw.Stop()
}
