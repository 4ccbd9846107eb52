package bot

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	apperrors "menu-explainer/errors"
	"menu-explainer/services"
)

const (
	maxMessageLen   = 4096
	maxCallbackData = 64
	maxKeyboardRows = 50
	searchLimit     = 20
)

const helpText = `Menu Explainer

/restaurants - list restaurants
/menu <restaurant> - full menu
/sections <restaurant> - section names
/section <restaurant> | <section> - items of one section
/search <text> - items matching a name or description
/price <min> <max> - items within a price range
/find <item> - restaurants serving an item
/stats <restaurant> - menu statistics`

// reply answers one command. It never touches the Telegram API so it can be
// tested against a plain Service.
func (b *Bot) reply(ctx context.Context, cmd, args string) string {
	switch cmd {
	case "start", "help":
		return helpText
	case "restaurants":
		names, err := b.service.ListRestaurants(ctx)
		if err != nil {
			return errorText(err)
		}
		return formatNames("Restaurants", names)
	case "menu":
		if args == "" {
			return "Usage: /menu <restaurant>"
		}
		m, err := b.service.GetMenu(ctx, args)
		if err != nil {
			return errorText(err)
		}
		return formatMenu(args, m)
	case "sections":
		if args == "" {
			return "Usage: /sections <restaurant>"
		}
		names, err := b.service.ListSections(ctx, args)
		if err != nil {
			return errorText(err)
		}
		return formatNames("Sections of "+args, names)
	case "section":
		restaurant, section, ok := strings.Cut(args, "|")
		restaurant, section = strings.TrimSpace(restaurant), strings.TrimSpace(section)
		if !ok || restaurant == "" {
			return "Usage: /section <restaurant> | <section>"
		}
		items, err := b.service.GetSectionItems(ctx, restaurant, section)
		if err != nil {
			return errorText(err)
		}
		return formatSection(restaurant, section, items)
	case "search":
		if args == "" {
			return "Usage: /search <text>"
		}
		items, err := b.service.SearchItems(ctx, services.ItemQuery{Text: args, Limit: searchLimit})
		if err != nil {
			return errorText(err)
		}
		return formatRecords("Results for \""+args+"\"", items)
	case "price":
		fields := strings.Fields(args)
		if len(fields) != 2 {
			return "Usage: /price <min> <max>"
		}
		lo, err1 := strconv.ParseFloat(fields[0], 64)
		hi, err2 := strconv.ParseFloat(fields[1], 64)
		if err1 != nil || err2 != nil {
			return "Prices must be numbers, e.g. /price 5 12.50"
		}
		items, err := b.service.SearchByPriceRange(ctx, lo, hi, searchLimit)
		if err != nil {
			return errorText(err)
		}
		return formatRecords("Items from "+formatPrice(&lo)+" to "+formatPrice(&hi), items)
	case "find":
		if args == "" {
			return "Usage: /find <item>"
		}
		names, err := b.service.FindRestaurantsWithItem(ctx, args)
		if err != nil {
			return errorText(err)
		}
		return formatNames("Restaurants serving \""+args+"\"", names)
	case "stats":
		if args == "" {
			return "Usage: /stats <restaurant>"
		}
		st, err := b.service.GetRestaurantStats(ctx, args)
		if err != nil {
			return errorText(err)
		}
		return formatStats(st)
	}
	return "Unknown command. Send /help for the list of commands."
}

// errorText turns engine errors into a user-facing line. Internal causes are
// logged, not shown.
func errorText(err error) string {
	se, ok := apperrors.As(err)
	if ok && (se.Code == apperrors.ErrCodeNotFound || se.Code == apperrors.ErrCodeInvalidRequest) {
		return se.Message
	}
	slog.Error("bot query failed", "error", err)
	return "Something went wrong, please try again later."
}
