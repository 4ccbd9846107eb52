package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menu-explainer/models"
	"menu-explainer/store"
)

func seed(t *testing.T) *Store {
	t.Helper()
	s := New()
	ctx := context.Background()
	_, err := s.ImportRestaurant(ctx, models.Restaurant{
		Name: "Luigi's",
		Sections: []models.Section{
			{Name: "Pizza", Items: []models.MenuItem{
				{Name: "Margherita", Price: models.Float(11.5)},
				{Name: "Marinara"},
			}},
			{Name: "Drinks", Items: []models.MenuItem{
				{Name: "Espresso", Description: models.String("double shot"), Price: models.Float(3)},
			}},
		},
	})
	require.NoError(t, err)
	_, err = s.ImportRestaurant(ctx, models.Restaurant{
		Name: "Taqueria",
		Sections: []models.Section{
			{Name: "Tacos", Items: []models.MenuItem{{Name: "Al Pastor", Price: models.Float(4.25)}}},
		},
	})
	require.NoError(t, err)
	return s
}

func TestStore_ListRestaurantsKeepsInsertionOrder(t *testing.T) {
	s := seed(t)

	rs, err := s.ListRestaurants(context.Background())
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, "Luigi's", rs[0].Name)
	assert.Equal(t, "Taqueria", rs[1].Name)
	assert.Empty(t, rs[0].Sections)
}

func TestStore_GetRestaurantTree(t *testing.T) {
	s := seed(t)

	r, err := s.GetRestaurant(context.Background(), "Luigi's")
	require.NoError(t, err)
	require.Len(t, r.Sections, 2)
	assert.Equal(t, "Pizza", r.Sections[0].Name)
	assert.Equal(t, r.ID, r.Sections[0].RestaurantID)
	require.Len(t, r.Sections[0].Items, 2)
	assert.Equal(t, r.Sections[0].ID, r.Sections[0].Items[0].SectionID)
	assert.Nil(t, r.Sections[0].Items[1].Price)

	_, err = s.GetRestaurant(context.Background(), "luigi's")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_ListItemsScope(t *testing.T) {
	s := seed(t)
	ctx := context.Background()

	all, err := s.ListItems(ctx, store.ItemScope{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "Margherita", all[0].Name)
	assert.Equal(t, "Pizza", all[0].Section)
	assert.Equal(t, "Luigi's", all[0].Restaurant)
	assert.Equal(t, "Al Pastor", all[3].Name)

	one, err := s.ListItems(ctx, store.ItemScope{Restaurant: "Taqueria"})
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "Taqueria", one[0].Restaurant)

	none, err := s.ListItems(ctx, store.ItemScope{Restaurant: "Nowhere"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_DeleteRestaurantCascades(t *testing.T) {
	s := seed(t)
	ctx := context.Background()

	require.NoError(t, s.DeleteRestaurant(ctx, "Luigi's"))
	assert.NotContains(t, s.sections, int64(2))
	assert.NotContains(t, s.items, int64(3))
	assert.Len(t, s.sections, 1)
	assert.Len(t, s.items, 1)

	rs, err := s.ListRestaurants(ctx)
	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.Equal(t, "Taqueria", rs[0].Name)

	assert.ErrorIs(t, s.DeleteRestaurant(ctx, "Luigi's"), store.ErrNotFound)
}

func TestStore_ImportDuplicateName(t *testing.T) {
	s := seed(t)

	_, err := s.ImportRestaurant(context.Background(), models.Restaurant{Name: "Taqueria"})
	var dup *DuplicateNameError
	assert.ErrorAs(t, err, &dup)
}

func TestStore_Reset(t *testing.T) {
	s := seed(t)
	ctx := context.Background()

	require.NoError(t, s.Reset(ctx))
	rs, err := s.ListRestaurants(ctx)
	require.NoError(t, err)
	assert.Empty(t, rs)
	assert.Empty(t, s.items)
}

func TestStore_CanceledContext(t *testing.T) {
	s := seed(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.ListItems(ctx, store.ItemScope{})
	assert.ErrorIs(t, err, context.Canceled)
}
