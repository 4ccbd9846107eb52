package server

import (
	"bytes"
	"encoding/json"

	"menu-explainer/models"

	"gopkg.in/yaml.v3"
)

// Item is a menu item as returned by the menu and section endpoints.
type Item struct {
	Name        string   `json:"name" yaml:"name"`
	Description *string  `json:"description" yaml:"description"`
	Price       *float64 `json:"price" yaml:"price"`
}

// SectionItem is an item of a restaurant listing, tagged with its section.
type SectionItem struct {
	Item    `yaml:",inline"`
	Section string `json:"section" yaml:"section"`
}

// SearchItem is a cross-restaurant search hit.
type SearchItem struct {
	Item       `yaml:",inline"`
	Section    string `json:"section" yaml:"section"`
	Restaurant string `json:"restaurant" yaml:"restaurant"`
}

// Stats is the wire form of models.RestaurantStats.
type Stats struct {
	Restaurant        string   `json:"restaurant" yaml:"restaurant"`
	TotalSections     int      `json:"total_sections" yaml:"total_sections"`
	TotalItems        int      `json:"total_items" yaml:"total_items"`
	ItemsWithPrice    int      `json:"items_with_price" yaml:"items_with_price"`
	ItemsWithoutPrice int      `json:"items_without_price" yaml:"items_without_price"`
	AveragePrice      *float64 `json:"average_price" yaml:"average_price"`
	MinPrice          *float64 `json:"min_price" yaml:"min_price"`
	MaxPrice          *float64 `json:"max_price" yaml:"max_price"`
}

// Menu encodes as an object keyed by section name, in section order.
type Menu struct {
	sections []models.MenuSection
}

func newItem(m models.MenuItem) Item {
	return Item{Name: m.Name, Description: m.Description, Price: m.Price}
}

func newItems(ms []models.MenuItem) []Item {
	out := make([]Item, 0, len(ms))
	for _, m := range ms {
		out = append(out, newItem(m))
	}
	return out
}

func newSectionItems(rs []models.ItemRecord) []SectionItem {
	out := make([]SectionItem, 0, len(rs))
	for _, r := range rs {
		out = append(out, SectionItem{Item: newItem(r.MenuItem), Section: r.Section})
	}
	return out
}

func newSearchItems(rs []models.ItemRecord) []SearchItem {
	out := make([]SearchItem, 0, len(rs))
	for _, r := range rs {
		out = append(out, SearchItem{Item: newItem(r.MenuItem), Section: r.Section, Restaurant: r.Restaurant})
	}
	return out
}

func newStats(st *models.RestaurantStats) Stats {
	return Stats{
		Restaurant:        st.Restaurant,
		TotalSections:     st.TotalSections,
		TotalItems:        st.TotalItems,
		ItemsWithPrice:    st.ItemsWithPrice,
		ItemsWithoutPrice: st.ItemsWithoutPrice,
		AveragePrice:      st.AveragePrice,
		MinPrice:          st.MinPrice,
		MaxPrice:          st.MaxPrice,
	}
}

func newMenu(m models.Menu) Menu {
	return Menu{sections: m.Sections}
}

func (m Menu) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, sec := range m.sections {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(sec.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(newItems(sec.Items))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m Menu) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, sec := range m.sections {
		var val yaml.Node
		if err := val.Encode(newItems(sec.Items)); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: sec.Name},
			&val,
		)
	}
	return node, nil
}
