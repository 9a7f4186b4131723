package reporter

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"go-bdjobs-e2e/internal/config"
)

// RunSummary describes the outcome of one test-suite run.
type RunSummary struct {
	RunID    string
	Passed   bool
	Started  time.Time
	Duration time.Duration
}

func NewRunSummary() *RunSummary {
	return &RunSummary{
		RunID:   uuid.NewString(),
		Started: time.Now(),
	}
}

// Finish records the run outcome and total duration.
func (s *RunSummary) Finish(passed bool) {
	s.Passed = passed
	s.Duration = time.Since(s.Started).Round(time.Second)
}

// Text renders the summary as a Telegram HTML message.
func (s *RunSummary) Text() string {
	status := "✅ PASSED"
	if !s.Passed {
		status = "❌ FAILED"
	}
	return fmt.Sprintf(
		"%s <b>bdjobs e2e run</b>\n"+
			"🆔 %s\n"+
			"⏱ %s",
		status, s.RunID, s.Duration,
	)
}

// TelegramReporter sends run summaries to a Telegram chat. It is optional:
// NewTelegramReporter returns nil when no token/chat is configured, and a
// nil reporter ignores all sends.
type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(cfg *config.Config) (*TelegramReporter, error) {
	if cfg.TelegramToken == "" || cfg.TelegramChatID == 0 {
		return nil, nil
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	return &TelegramReporter{
		bot:    bot,
		chatID: cfg.TelegramChatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	if t == nil {
		return nil
	}
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

func (t *TelegramReporter) SendRunSummary(summary *RunSummary) error {
	return t.SendMessage(summary.Text())
}

func (t *TelegramReporter) SendError(errReq error) error {
	return t.SendMessage(fmt.Sprintf("⚠️ <b>bdjobs e2e error</b>:\n%v", errReq))
}
