// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type Config struct {
	//Site under test
	BaseURL string `yaml:"base_url" env:"BDJOBS_BASE_URL"`

	//Browser launch
	Headless bool    `yaml:"headless" env:"HEADLESS"`
	SlowMoMs float64 `yaml:"slow_mo_ms"`

	//Context creation
	ViewportWidth       int     `yaml:"viewport_width"`
	ViewportHeight      int     `yaml:"viewport_height"`
	NavigationTimeoutMs float64 `yaml:"navigation_timeout_ms"`
	SelectorTimeoutMs   float64 `yaml:"selector_timeout_ms"`

	//Artifact paths
	ScreenshotDir string `yaml:"screenshot_dir"`
	VideoDir      string `yaml:"video_dir"`
	ResultsDir    string `yaml:"results_dir"`

	//Optional cookie export for pre-authenticated sessions
	CookiesPath string `yaml:"cookies_path" env:"BDJOBS_COOKIES"`

	//Optional run reporting
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
}

func Load() *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		//test packages run with the package dir as cwd
		data, err = os.ReadFile("../configs/config.yaml")
	}
	if err != nil {
		logrus.Warnf("Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			logrus.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Override with env vars
	if baseURL := os.Getenv("BDJOBS_BASE_URL"); baseURL != "" {
		cfg.BaseURL = baseURL
	}

	if headless := os.Getenv("HEADLESS"); headless != "" {
		cfg.Headless = headless == "true" || headless == "1"
	}

	if cookies := os.Getenv("BDJOBS_COOKIES"); cookies != "" {
		cfg.CookiesPath = cookies
	}

	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			logrus.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	//Set default values if not set
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://bdjobs.com"
	}

	if cfg.SlowMoMs == 0 {
		cfg.SlowMoMs = 100
	}

	if cfg.ViewportWidth == 0 {
		cfg.ViewportWidth = 1280
	}

	if cfg.ViewportHeight == 0 {
		cfg.ViewportHeight = 720
	}

	if cfg.NavigationTimeoutMs == 0 {
		cfg.NavigationTimeoutMs = 30000
	}

	if cfg.SelectorTimeoutMs == 0 {
		cfg.SelectorTimeoutMs = 10000
	}

	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}

	if cfg.VideoDir == "" {
		cfg.VideoDir = "videos"
	}

	if cfg.ResultsDir == "" {
		cfg.ResultsDir = "results"
	}

	return cfg
}
