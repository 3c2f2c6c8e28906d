package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot         *tgbotapi.BotAPI
	adminChatID int64
	logger      logger.Logger
}

func NewTelegramNotifier(token string, adminChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, adminChatID: adminChatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, adminChatID: adminChatID, logger: logger}, nil
}

func (n *TelegramNotifier) AlertAdmins(ctx context.Context, text string) {
	if n.adminChatID == 0 {
		n.logger.Debug("admin alert skipped (no admin chat)", logger.String("text", text))
		return
	}
	n.send(ctx, n.adminChatID, text)
}

func (n *TelegramNotifier) NotifyUser(ctx context.Context, chatID int64, text string) {
	n.send(ctx, chatID, text)
}

// send uses Markdown parse mode; text must already have user values escaped.
func (n *TelegramNotifier) send(ctx context.Context, chatID int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", chatID),
			logger.String("error", err.Error()),
		)
	}
}
