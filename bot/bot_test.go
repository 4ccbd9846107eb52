package bot

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	apperrors "menu-explainer/errors"
	"menu-explainer/models"
	"menu-explainer/services"
	"menu-explainer/store/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBot(t *testing.T) *Bot {
	t.Helper()
	st := memory.New()
	for _, r := range []models.Restaurant{
		{Name: "Luigi's", Sections: []models.Section{
			{Name: "Pizza", Items: []models.MenuItem{
				{Name: "Margherita", Description: models.String("tomato, basil"), Price: models.Float(12.99)},
				{Name: "Special"},
			}},
			{Name: "Desserts"},
		}},
		{Name: "Taqueria", Sections: []models.Section{
			{Name: "Tacos", Items: []models.MenuItem{{Name: "Pizza Taco", Price: models.Float(5)}}},
		}},
	} {
		_, err := st.ImportRestaurant(context.Background(), r)
		require.NoError(t, err)
	}
	return &Bot{service: services.New(st)}
}

func TestReply(t *testing.T) {
	b := testBot(t)
	ctx := context.Background()

	tests := []struct {
		cmd, args string
		contains  []string
	}{
		{"start", "", []string{"/menu <restaurant>", "/stats"}},
		{"restaurants", "", []string{"• Luigi's", "• Taqueria"}},
		{"menu", "Luigi's", []string{"Pizza", "• Margherita - $12.99", "   tomato, basil", "• Special - price n/a", "Desserts", "(empty)"}},
		{"menu", "Nowhere", []string{"Restaurant 'Nowhere' not found"}},
		{"menu", "", []string{"Usage: /menu"}},
		{"sections", "Taqueria", []string{"Sections of Taqueria", "• Tacos"}},
		{"section", "Luigi's | Pizza", []string{"Luigi's / Pizza", "Margherita"}},
		{"section", "Luigi's | Drinks", []string{"Section 'Drinks' not found in restaurant 'Luigi's'"}},
		{"section", "Luigi's", []string{"Usage: /section"}},
		{"search", "pizza", []string{"• Pizza Taco - $5.00 (Taqueria, Tacos)"}},
		{"search", "sushi", []string{"nothing found"}},
		{"price", "5 13", []string{"Items from $5.00 to $13.00", "Pizza Taco", "Margherita"}},
		{"price", "13 5", []string{"min_price"}},
		{"price", "cheap", []string{"Usage: /price"}},
		{"price", "a b", []string{"Prices must be numbers"}},
		{"find", "PIZZA", []string{"• Taqueria"}},
		{"find", "ramen", []string{"none"}},
		{"stats", "Luigi's", []string{"Sections: 2", "Items: 2 (1 priced, 1 unpriced)", "Average: $12.99"}},
		{"stats", "Nowhere", []string{"not found"}},
		{"order", "", []string{"Unknown command"}},
	}
	for _, tt := range tests {
		t.Run(tt.cmd+" "+tt.args, func(t *testing.T) {
			got := b.reply(ctx, tt.cmd, tt.args)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestReply_PriceRangeOrder(t *testing.T) {
	got := testBot(t).reply(context.Background(), "price", "0 100")
	assert.Less(t, strings.Index(got, "Pizza Taco"), strings.Index(got, "Margherita"))
	assert.NotContains(t, got, "Special")
}

func TestErrorText(t *testing.T) {
	assert.Equal(t, "gone", errorText(apperrors.New(apperrors.ErrCodeNotFound, "gone")))
	assert.Equal(t, "bad", errorText(apperrors.New(apperrors.ErrCodeInvalidRequest, "bad")))

	internal := errorText(apperrors.Wrap(apperrors.ErrCodeInternal, "query failed", errors.New("dial tcp 10.0.0.7")))
	assert.NotContains(t, internal, "10.0.0.7")
	assert.Contains(t, errorText(errors.New("plain")), "try again")
}

func TestFormatStats_NoPrices(t *testing.T) {
	got := formatStats(&models.RestaurantStats{Restaurant: "Market", TotalSections: 1, TotalItems: 2, ItemsWithoutPrice: 2})
	assert.Contains(t, got, "Items: 2 (0 priced, 2 unpriced)")
	assert.NotContains(t, got, "Average")
}

func TestChunk(t *testing.T) {
	assert.Equal(t, []string{"short"}, chunk("short", 10))

	parts := chunk("aaaa\nbbbb\ncccc", 10)
	assert.Equal(t, []string{"aaaa\nbbbb", "cccc"}, parts)

	long := strings.Repeat("é", 25)
	parts = chunk(long, 10)
	require.Len(t, parts, 3)
	assert.Equal(t, long, strings.Join(parts, ""))

	var sb strings.Builder
	for i := 0; i < 500; i++ {
		sb.WriteString("• Item with a reasonably long name - $10.00\n")
	}
	for _, p := range chunk(sb.String(), maxMessageLen) {
		assert.LessOrEqual(t, utf8.RuneCountInString(p), maxMessageLen)
		assert.NotEmpty(t, p)
	}
}
