package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"go-bdjobs-e2e/internal/browser"
	"go-bdjobs-e2e/internal/config"
	"go-bdjobs-e2e/internal/pages"
	"go-bdjobs-e2e/internal/reporter"
)

var logger *logrus.Logger

var rootCmd = &cobra.Command{
	Use:   "bdjobs-e2e",
	Short: "Helper CLI for the bdjobs.com e2e suite",
	Long: `bdjobs-e2e manages the browser automation environment for the test suite.

Use "install" to download the Playwright driver and browsers, and "smoke" to
verify the site is reachable with the configured browser settings.`,
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the Playwright driver and browsers",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("⬇️ Installing Playwright driver and browsers...")
		if err := playwright.Install(); err != nil {
			return fmt.Errorf("could not install playwright: %w", err)
		}
		logger.Info("✅ Playwright installed")
		return nil
	},
}

var smokeCmd = &cobra.Command{
	Use:   "smoke",
	Short: "Open the home page and capture a screenshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		logger.Infof("🔧 Config loaded. Base URL: %s", cfg.BaseURL)

		rep, err := reporter.NewTelegramReporter(cfg)
		if err != nil {
			logger.Warnf("⚠️ Telegram reporter unavailable: %v", err)
		}

		if err := runSmoke(cfg); err != nil {
			rep.SendError(err)
			return err
		}

		logger.Info("✨ Smoke check complete!")
		return nil
	},
}

func runSmoke(cfg *config.Config) error {
	manager, err := browser.NewManager(cfg)
	if err != nil {
		return err
	}
	defer manager.Close()

	ctx, page, err := manager.NewPage()
	if err != nil {
		return err
	}
	defer ctx.Close()

	home := pages.NewHomePage(pages.NewBasePage(page, cfg))
	if err := home.Open(); err != nil {
		return fmt.Errorf("failed to open home page: %w", err)
	}
	if err := home.WaitForPageLoad(); err != nil {
		return fmt.Errorf("home page did not settle: %w", err)
	}

	title, err := home.Title()
	if err != nil {
		return err
	}
	logger.Infof("✅ Page title: %s", title)

	if err := home.TakeScreenshot("smoke-home"); err != nil {
		return fmt.Errorf("failed to capture screenshot: %w", err)
	}
	logger.Info("📸 Screenshot saved: smoke-home.png")

	return nil
}

func init() {
	_ = godotenv.Load()

	logger = logrus.New()

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		fmt.Printf("Invalid LOG_LEVEL '%s', defaulting to 'info'\n", logLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(smokeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
