package models

// Restaurant is the top of the menu tree. Name is unique and is the only
// identifier exposed outside the store.
type Restaurant struct {
	ID       int64
	Name     string
	Sections []Section
}

// Section belongs to exactly one restaurant.
type Section struct {
	ID           int64
	RestaurantID int64
	Name         string
	Items        []MenuItem
}

// MenuItem belongs to exactly one section. A nil Price means the price is
// unknown (market price, non-numeric source value) and is distinct from zero.
type MenuItem struct {
	ID          int64
	SectionID   int64
	Name        string
	Description *string
	Price       *float64
}

// HasPrice reports whether the item carries a numeric price.
func (m MenuItem) HasPrice() bool {
	return m.Price != nil
}

// ItemRecord is a menu item flattened out of the tree together with the names
// of its owning section and restaurant.
type ItemRecord struct {
	MenuItem
	Section    string
	Restaurant string
}

// Items returns every item of the restaurant in section order, annotated with
// section and restaurant names.
func (r *Restaurant) Items() []ItemRecord {
	var out []ItemRecord
	for _, s := range r.Sections {
		for _, it := range s.Items {
			out = append(out, ItemRecord{MenuItem: it, Section: s.Name, Restaurant: r.Name})
		}
	}
	return out
}

// SectionByName returns the first section with the given name.
func (r *Restaurant) SectionByName(name string) (*Section, bool) {
	for i := range r.Sections {
		if r.Sections[i].Name == name {
			return &r.Sections[i], true
		}
	}
	return nil, false
}

// Float returns a pointer to v. Handy for building items with a price.
func Float(v float64) *float64 {
	return &v
}

// String returns a pointer to s.
func String(s string) *string {
	return &s
}
