package models

// RestaurantStats summarises a restaurant's menu. The price fields are nil when
// no item of the restaurant has a price.
type RestaurantStats struct {
	Restaurant        string
	TotalSections     int
	TotalItems        int
	ItemsWithPrice    int
	ItemsWithoutPrice int
	AveragePrice      *float64
	MinPrice          *float64
	MaxPrice          *float64
}
