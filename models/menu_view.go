package models

// MenuSection is one named group of a restaurant menu view.
type MenuSection struct {
	Name  string
	Items []MenuItem
}

// Menu is an ordered mapping from section name to items. A repeated section
// name keeps the position of its first occurrence and the items of its last.
type Menu struct {
	Sections []MenuSection
}

// Set stores items under name following the ordering rule above.
func (m *Menu) Set(name string, items []MenuItem) {
	for i := range m.Sections {
		if m.Sections[i].Name == name {
			m.Sections[i].Items = items
			return
		}
	}
	m.Sections = append(m.Sections, MenuSection{Name: name, Items: items})
}

// Get returns the items stored under name.
func (m Menu) Get(name string) ([]MenuItem, bool) {
	for _, s := range m.Sections {
		if s.Name == name {
			return s.Items, true
		}
	}
	return nil, false
}

// Len returns the number of distinct section names.
func (m Menu) Len() int {
	return len(m.Sections)
}
