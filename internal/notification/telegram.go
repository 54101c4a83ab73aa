package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/jimbobirecode/RPGC-Mail/internal/domain"
)

// TelegramNotifier pushes booking updates into the staff chat.
type TelegramNotifier struct {
	bot         *tgbotapi.BotAPI
	staffChatID int64
	logger      logger.Logger
}

func NewTelegramNotifier(token string, staffChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, staffChatID: staffChatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, staffChatID: staffChatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, b *domain.Booking, remaining int) {
	text := fmt.Sprintf(
		"*Booking confirmed*\n\n%s\n%d spot(s) remaining for this tee time.",
		describeBooking(b), remaining,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingReleased(ctx context.Context, b *domain.Booking, to domain.BookingStatus) {
	text := fmt.Sprintf(
		"*Slot released (booking reverted to %s)*\n\n%s",
		to, describeBooking(b),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf("*Booking cancelled*\n\n%s", describeBooking(b))
	n.send(ctx, text)
}

func describeBooking(b *domain.Booking) string {
	slot := "no tee time assigned"
	if key, ok := b.SlotKey(); ok {
		slot = fmt.Sprintf("%s at %s", key.Date, key.Time)
	}
	return fmt.Sprintf(
		"Booking: %s\nGuest: %s\nPlayers: %d\nTee time: %s",
		b.BookingID, b.GuestEmail, b.Players, slot,
	)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.staffChatID == 0 {
		n.logger.Debug("notification skipped (no staff chat configured)")
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.staffChatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.staffChatID),
			logger.String("error", err.Error()),
		)
	}
}
