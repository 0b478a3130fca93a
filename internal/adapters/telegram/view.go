// Package telegram is a host "UI toolkit" over the Telegram Bot API. Its
// UI node is a tgbotapi.MessageConfig: the rendered todo list plus an
// inline keyboard whose callback data routes interactions back through the
// View's callback table.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"Trellis/internal/core/event"
	"Trellis/internal/core/mvc"
	"Trellis/internal/todo"
)

// Callback-data verbs carried by the inline keyboard.
const (
	dataToggle = "done"
	dataRemove = "rm"
	dataClear  = "clear"
)

// ErrBadCallbackData reports callback data that matches no verb the View
// renders. Telegram can replay stale keyboards, so this is surfaced to the
// host for logging rather than treated as fatal.
var ErrBadCallbackData = errors.New("telegram: bad callback data")

// View renders a todo list into a Telegram message for one chat. Render is
// pure construction; no network traffic happens here.
type View struct {
	mvc.ViewBase
	chatID int64
	log    zerolog.Logger
}

var _ mvc.View[[]todo.Item, tgbotapi.MessageConfig] = (*View)(nil)

// NewView creates a Telegram View rendering into the given chat.
func NewView(chatID int64, baseLogger *zerolog.Logger) *View {
	return &View{
		ViewBase: mvc.NewViewBase(),
		chatID:   chatID,
		log:      baseLogger.With().Str("component", "tg_view").Logger(),
	}
}

// Render builds the message: one text line and one keyboard row per item,
// plus a clear row when the list is non-empty. Sending a plain text message
// to the bot adds an item.
func (v *View) Render(items []todo.Item) (tgbotapi.MessageConfig, error) {
	var text strings.Builder
	text.WriteString("Todo list\n")

	if len(items) == 0 {
		text.WriteString("(nothing to do — send me a message to add an item)\n")
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, item := range items {
		mark := "☐"
		if item.Done {
			mark = "☑"
		}
		fmt.Fprintf(&text, "%s %d. %s\n", mark, item.ID, item.Name)

		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("%s %s", mark, item.Name),
				fmt.Sprintf("%s:%d", dataToggle, item.ID),
			),
			tgbotapi.NewInlineKeyboardButtonData(
				"✕",
				fmt.Sprintf("%s:%d", dataRemove, item.ID),
			),
		))
	}
	if len(items) > 0 {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("clear all", dataClear),
		))
	}

	msg := tgbotapi.NewMessage(v.chatID, text.String())
	if len(rows) > 0 {
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	}
	return msg, nil
}

// HandleText is the interaction listener for plain messages: the text
// becomes a new item. The fire resolves the current Add callback, not one
// captured at render time.
func (v *View) HandleText(ctx context.Context, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	event.Fire(ctx, v.Callbacks(), todo.Add, text)
}

// HandleCallbackData is the interaction listener for keyboard presses. It
// parses the callback data rendered into the keyboard and fires the
// matching event by name.
func (v *View) HandleCallbackData(ctx context.Context, data string) error {
	verb, arg, _ := strings.Cut(data, ":")

	switch verb {
	case dataClear:
		event.Fire(ctx, v.Callbacks(), todo.Clear, struct{}{})
		return nil

	case dataToggle, dataRemove:
		id, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrBadCallbackData, data)
		}
		if verb == dataToggle {
			event.Fire(ctx, v.Callbacks(), todo.Toggle, id)
		} else {
			event.Fire(ctx, v.Callbacks(), todo.Remove, id)
		}
		return nil

	default:
		return fmt.Errorf("%w: %q", ErrBadCallbackData, data)
	}
}
