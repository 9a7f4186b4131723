package pages

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"

	"go-bdjobs-e2e/internal/config"
)

// Pager is the capability surface every page object exposes. Concrete pages
// embed *BasePage rather than inheriting from it; the interface exists so
// test helpers can accept any page without caring which one.
type Pager interface {
	Navigate(path string) error
	WaitForPageLoad() error
	Title() (string, error)
	URL() string
	TakeScreenshot(name string) error
	IsElementVisible(selector string) bool
	Click(selector string) error
	Fill(selector, text string) error
	SelectOption(selector, value string) error
	WaitForSelector(selector string, state *playwright.WaitForSelectorState, timeoutMs float64) error
}

// BasePage wraps a raw playwright page with the narrow set of operations the
// page objects need. Every operation except IsElementVisible propagates the
// playwright error unchanged; there are no retries.
type BasePage struct {
	page    playwright.Page
	baseURL string
	shotDir string
}

var _ Pager = (*BasePage)(nil)

func NewBasePage(page playwright.Page, cfg *config.Config) *BasePage {
	return &BasePage{
		page:    page,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		shotDir: cfg.ScreenshotDir,
	}
}

// Page exposes the underlying playwright page for the rare cases a test
// needs something the wrapper does not offer.
func (bp *BasePage) Page() playwright.Page {
	return bp.page
}

// Navigate builds an absolute URL from the configured base and loads it.
func (bp *BasePage) Navigate(path string) error {
	url := bp.baseURL + "/" + strings.TrimLeft(path, "/")
	logrus.Infof("🔍 Navigating to: %s", url)
	_, err := bp.page.Goto(url)
	return err
}

// WaitForPageLoad blocks until there is no pending network activity.
func (bp *BasePage) WaitForPageLoad() error {
	return bp.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateNetworkidle,
	})
}

func (bp *BasePage) Title() (string, error) {
	return bp.page.Title()
}

func (bp *BasePage) URL() string {
	return bp.page.URL()
}

// TakeScreenshot captures the current render as <screenshot_dir>/<name>.png.
func (bp *BasePage) TakeScreenshot(name string) error {
	if err := os.MkdirAll(bp.shotDir, 0755); err != nil {
		return err
	}
	path := filepath.Join(bp.shotDir, fmt.Sprintf("%s.png", name))
	_, err := bp.page.Screenshot(playwright.PageScreenshotOptions{
		Path: playwright.String(path),
	})
	return err
}

// IsElementVisible reports whether the selector is currently visible. This
// is the single place a failure is suppressed: not found and timed out both
// flatten to false instead of an error.
func (bp *BasePage) IsElementVisible(selector string) bool {
	visible, err := bp.page.Locator(selector).IsVisible()
	if err != nil {
		return false
	}
	return visible
}

func (bp *BasePage) Click(selector string) error {
	return bp.page.Locator(selector).Click()
}

func (bp *BasePage) Fill(selector, text string) error {
	return bp.page.Locator(selector).Fill(text)
}

func (bp *BasePage) SelectOption(selector, value string) error {
	_, err := bp.page.Locator(selector).SelectOption(playwright.SelectOptionValues{
		Values: &[]string{value},
	})
	return err
}

// WaitForSelector blocks until the selector reaches the given state or the
// timeout elapses, at which point it returns the timeout error.
func (bp *BasePage) WaitForSelector(selector string, state *playwright.WaitForSelectorState, timeoutMs float64) error {
	return bp.page.Locator(selector).WaitFor(playwright.LocatorWaitForOptions{
		State:   state,
		Timeout: playwright.Float(timeoutMs),
	})
}

// Text returns the text content of the first element matching the selector.
func (bp *BasePage) Text(selector string) (string, error) {
	return bp.page.Locator(selector).First().TextContent()
}
