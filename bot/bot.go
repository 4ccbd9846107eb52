// Package bot is a read-only Telegram front end for the menu query engine.
package bot

import (
	"context"
	"log/slog"
	"strings"

	"menu-explainer/config"
	"menu-explainer/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// callbackMenu prefixes inline button data that opens a restaurant menu.
const callbackMenu = "menu:"

type Bot struct {
	api     *tgbotapi.BotAPI
	service *services.Service
}

func New(cfg config.TelegramConfig, svc *services.Service) (*Bot, error) {
	endpoint := cfg.APIEndpoint
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}
	api, err := tgbotapi.NewBotAPIWithAPIEndpoint(cfg.Token, endpoint)
	if err != nil {
		return nil, err
	}
	slog.Info("telegram bot authorized", "username", api.Self.UserName)
	return &Bot{api: api, service: svc}, nil
}

// Start polls for updates until ctx is canceled.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.setBotCommands(); err != nil {
		slog.Warn("failed to register bot commands", "error", err)
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			slog.Info("telegram bot stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		b.handleCallback(ctx, update.CallbackQuery)
		return
	}
	msg := update.Message
	if msg == nil || !msg.IsCommand() {
		return
	}

	cmd, args := msg.Command(), strings.TrimSpace(msg.CommandArguments())
	slog.Debug("bot command", "chatID", msg.Chat.ID, "command", cmd)

	if cmd == "restaurants" {
		b.sendRestaurants(ctx, msg.Chat.ID)
		return
	}
	b.send(msg.Chat.ID, b.reply(ctx, cmd, args))
}

func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		slog.Warn("callback answer failed", "error", err)
	}
	if cq.Message == nil {
		return
	}
	if name, ok := strings.CutPrefix(cq.Data, callbackMenu); ok {
		b.send(cq.Message.Chat.ID, b.reply(ctx, "menu", name))
	}
}

// sendRestaurants lists restaurants with one menu button per restaurant whose
// name fits in callback data.
func (b *Bot) sendRestaurants(ctx context.Context, chatID int64) {
	names, err := b.service.ListRestaurants(ctx)
	if err != nil {
		b.send(chatID, errorText(err))
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, name := range names {
		if len(callbackMenu)+len(name) > maxCallbackData {
			continue
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(name, callbackMenu+name),
		))
	}

	msg := tgbotapi.NewMessage(chatID, formatNames("Restaurants", names))
	if len(rows) > 0 && len(rows) <= maxKeyboardRows {
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	}
	if _, err := b.api.Send(msg); err != nil {
		slog.Error("send error", "chatID", chatID, "error", err)
	}
}

// send splits text into Telegram-sized messages.
func (b *Bot) send(chatID int64, text string) {
	for _, part := range chunk(text, maxMessageLen) {
		if _, err := b.api.Send(tgbotapi.NewMessage(chatID, part)); err != nil {
			slog.Error("send error", "chatID", chatID, "error", err)
			return
		}
	}
}

func (b *Bot) setBotCommands() error {
	cfg := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "restaurants", Description: "List restaurants"},
		tgbotapi.BotCommand{Command: "menu", Description: "Full menu: /menu <restaurant>"},
		tgbotapi.BotCommand{Command: "sections", Description: "Sections: /sections <restaurant>"},
		tgbotapi.BotCommand{Command: "section", Description: "Items: /section <restaurant> | <section>"},
		tgbotapi.BotCommand{Command: "search", Description: "Search items: /search <text>"},
		tgbotapi.BotCommand{Command: "price", Description: "Price range: /price <min> <max>"},
		tgbotapi.BotCommand{Command: "find", Description: "Who serves it: /find <item>"},
		tgbotapi.BotCommand{Command: "stats", Description: "Menu stats: /stats <restaurant>"},
	)
	_, err := b.api.Request(cfg)
	return err
}
