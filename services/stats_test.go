package services

import (
	"context"
	"testing"

	"menu-explainer/models"
)

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name       string
		restaurant models.Restaurant
		want       models.RestaurantStats
	}{
		{
			name: "mixed prices",
			restaurant: models.Restaurant{Name: "Mixed", Sections: []models.Section{
				{Name: "A", Items: []models.MenuItem{{Price: models.Float(8.99)}, {}}},
				{Name: "B", Items: []models.MenuItem{{Price: models.Float(12.99)}}},
			}},
			want: models.RestaurantStats{
				Restaurant: "Mixed", TotalSections: 2, TotalItems: 3,
				ItemsWithPrice: 2, ItemsWithoutPrice: 1,
				AveragePrice: models.Float(10.99), MinPrice: models.Float(8.99), MaxPrice: models.Float(12.99),
			},
		},
		{
			name: "no prices",
			restaurant: models.Restaurant{Name: "Market", Sections: []models.Section{
				{Name: "Catch", Items: []models.MenuItem{{}, {}}},
			}},
			want: models.RestaurantStats{
				Restaurant: "Market", TotalSections: 1, TotalItems: 2, ItemsWithoutPrice: 2,
			},
		},
		{
			name:       "no sections",
			restaurant: models.Restaurant{Name: "Bare"},
			want:       models.RestaurantStats{Restaurant: "Bare"},
		},
		{
			name: "zero and negative prices count",
			restaurant: models.Restaurant{Name: "Odd", Sections: []models.Section{
				{Name: "A", Items: []models.MenuItem{{Price: models.Float(0)}, {Price: models.Float(-2)}}},
			}},
			want: models.RestaurantStats{
				Restaurant: "Odd", TotalSections: 1, TotalItems: 2, ItemsWithPrice: 2,
				AveragePrice: models.Float(-1), MinPrice: models.Float(-2), MaxPrice: models.Float(0),
			},
		},
		{
			name: "average rounds to cents",
			restaurant: models.Restaurant{Name: "Thirds", Sections: []models.Section{
				{Name: "A", Items: []models.MenuItem{{Price: models.Float(1)}, {Price: models.Float(1)}, {Price: models.Float(2)}}},
			}},
			want: models.RestaurantStats{
				Restaurant: "Thirds", TotalSections: 1, TotalItems: 3, ItemsWithPrice: 3,
				AveragePrice: models.Float(1.33), MinPrice: models.Float(1), MaxPrice: models.Float(2),
			},
		},
		{
			name: "half cent rounds to even",
			restaurant: models.Restaurant{Name: "Halves", Sections: []models.Section{
				{Name: "A", Items: []models.MenuItem{{Price: models.Float(1.25)}, {Price: models.Float(1)}}},
			}},
			want: models.RestaurantStats{
				Restaurant: "Halves", TotalSections: 1, TotalItems: 2, ItemsWithPrice: 2,
				AveragePrice: models.Float(1.12), MinPrice: models.Float(1), MaxPrice: models.Float(1.25),
			},
		},
		{
			name: "binary value below the half cent rounds down",
			restaurant: models.Restaurant{Name: "Bistro", Sections: []models.Section{
				{Name: "A", Items: []models.MenuItem{{Price: models.Float(8.99)}, {Price: models.Float(12.98)}}},
			}},
			want: models.RestaurantStats{
				Restaurant: "Bistro", TotalSections: 1, TotalItems: 2, ItemsWithPrice: 2,
				AveragePrice: models.Float(10.98), MinPrice: models.Float(8.99), MaxPrice: models.Float(12.98),
			},
		},
		{
			name: "quarter average rounds to even cent",
			restaurant: models.Restaurant{Name: "Quarters", Sections: []models.Section{
				{Name: "A", Items: []models.MenuItem{{Price: models.Float(10)}, {Price: models.Float(10.25)}}},
			}},
			want: models.RestaurantStats{
				Restaurant: "Quarters", TotalSections: 1, TotalItems: 2, ItemsWithPrice: 2,
				AveragePrice: models.Float(10.12), MinPrice: models.Float(10), MaxPrice: models.Float(10.25),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStats(&tt.restaurant)
			if got.Restaurant != tt.want.Restaurant ||
				got.TotalSections != tt.want.TotalSections ||
				got.TotalItems != tt.want.TotalItems ||
				got.ItemsWithPrice != tt.want.ItemsWithPrice ||
				got.ItemsWithoutPrice != tt.want.ItemsWithoutPrice {
				t.Errorf("counts = %+v, want %+v", got, tt.want)
			}
			checkPtr(t, "average", got.AveragePrice, tt.want.AveragePrice)
			checkPtr(t, "min", got.MinPrice, tt.want.MinPrice)
			checkPtr(t, "max", got.MaxPrice, tt.want.MaxPrice)
		})
	}
}

func checkPtr(t *testing.T, name string, got, want *float64) {
	t.Helper()
	switch {
	case got == nil && want == nil:
	case got == nil || want == nil:
		t.Errorf("%s = %v, want %v", name, got, want)
	case *got != *want:
		t.Errorf("%s = %v, want %v", name, *got, *want)
	}
}

func TestGetRestaurantStats(t *testing.T) {
	s := testService(t)
	st, err := s.GetRestaurantStats(context.Background(), "Taqueria")
	if err != nil {
		t.Fatal(err)
	}
	if st.TotalSections != 2 || st.TotalItems != 4 || st.ItemsWithPrice != 3 || st.ItemsWithoutPrice != 1 {
		t.Errorf("unexpected counts: %+v", st)
	}
	checkPtr(t, "average", st.AveragePrice, models.Float(4))
	checkPtr(t, "min", st.MinPrice, models.Float(3))
	checkPtr(t, "max", st.MaxPrice, models.Float(5))

	empty, err := s.GetRestaurantStats(context.Background(), "Empty Kitchen")
	if err != nil {
		t.Fatal(err)
	}
	if empty.TotalItems != 0 || empty.AveragePrice != nil {
		t.Errorf("unexpected empty stats: %+v", empty)
	}

	_, err = s.GetRestaurantStats(context.Background(), "Nowhere")
	assertNotFound(t, err, ResourceRestaurant, ErrRestaurantNotFound)
}
