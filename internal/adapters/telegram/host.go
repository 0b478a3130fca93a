package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// Host is the Telegram toolkit runtime: it long-polls for updates, routes
// them to the View's interaction listeners and sends every UI node pushed
// through the controller sink to the chat.
type Host struct {
	api    *tgbotapi.BotAPI
	view   *View
	chatID int64
	log    zerolog.Logger
}

// NewHost creates a Telegram host for the given bot API and View.
func NewHost(api *tgbotapi.BotAPI, chatID int64, view *View, baseLogger *zerolog.Logger) *Host {
	return &Host{
		api:    api,
		view:   view,
		chatID: chatID,
		log:    baseLogger.With().Str("component", "tg_host").Logger(),
	}
}

// Mount is the render sink: it sends the rendered message to the chat.
// Pass it to Controller.OnUpdate. Send failures are logged; the next
// render supersedes a lost one anyway.
func (h *Host) Mount(msg tgbotapi.MessageConfig) {
	if _, err := h.api.Send(msg); err != nil {
		h.log.Error().Err(err).Int64("chat_id", msg.ChatID).Msg("Failed to send rendered message")
	}
}

// Serve long-polls for updates until the context is cancelled, feeding
// messages and callback queries into the View.
func (h *Host) Serve(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := h.api.GetUpdatesChan(u)

	h.log.Info().Int64("chat_id", h.chatID).Msg("Listening for updates")

	for {
		select {
		case <-ctx.Done():
			h.api.StopReceivingUpdates()
			return ctx.Err()

		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.route(ctx, update)
		}
	}
}

// route dispatches one update to the matching View listener. Updates from
// other chats are ignored.
func (h *Host) route(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		cb := update.CallbackQuery
		if cb.Message == nil || cb.Message.Chat.ID != h.chatID {
			return
		}

		if err := h.view.HandleCallbackData(ctx, cb.Data); err != nil {
			h.log.Warn().Err(err).Msg("Ignoring unparseable callback data")
		}

		// Ack the press so the client stops its spinner.
		if _, err := h.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
			h.log.Warn().Err(err).Msg("Failed to answer callback query")
		}

	case update.Message != nil:
		msg := update.Message
		if msg.Chat.ID != h.chatID || msg.IsCommand() {
			return
		}
		h.view.HandleText(ctx, msg.Text)
	}
}
