package bot

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"menu-explainer/models"
)

func formatPrice(p *float64) string {
	if p == nil {
		return "price n/a"
	}
	return "$" + strconv.FormatFloat(*p, 'f', 2, 64)
}

func formatNames(title string, names []string) string {
	if len(names) == 0 {
		return title + ": none"
	}
	var sb strings.Builder
	sb.WriteString(title + ":\n")
	for _, n := range names {
		sb.WriteString("• " + n + "\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func writeItem(sb *strings.Builder, it models.MenuItem, suffix string) {
	fmt.Fprintf(sb, "• %s - %s%s\n", it.Name, formatPrice(it.Price), suffix)
	if it.Description != nil && *it.Description != "" {
		sb.WriteString("   " + *it.Description + "\n")
	}
}

func formatMenu(restaurant string, m models.Menu) string {
	if m.Len() == 0 {
		return restaurant + " has no menu sections."
	}
	var sb strings.Builder
	sb.WriteString(restaurant + "\n")
	for _, sec := range m.Sections {
		sb.WriteString("\n" + sec.Name + "\n")
		if len(sec.Items) == 0 {
			sb.WriteString("   (empty)\n")
		}
		for _, it := range sec.Items {
			writeItem(&sb, it, "")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatSection(restaurant, section string, items []models.MenuItem) string {
	if len(items) == 0 {
		return fmt.Sprintf("%s / %s: no items", restaurant, section)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s / %s\n", restaurant, section)
	for _, it := range items {
		writeItem(&sb, it, "")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatRecords(title string, items []models.ItemRecord) string {
	if len(items) == 0 {
		return title + ": nothing found"
	}
	var sb strings.Builder
	sb.WriteString(title + ":\n")
	for _, it := range items {
		writeItem(&sb, it.MenuItem, fmt.Sprintf(" (%s, %s)", it.Restaurant, it.Section))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatStats(st *models.RestaurantStats) string {
	lines := []string{
		st.Restaurant,
		fmt.Sprintf("Sections: %d", st.TotalSections),
		fmt.Sprintf("Items: %d (%d priced, %d unpriced)", st.TotalItems, st.ItemsWithPrice, st.ItemsWithoutPrice),
	}
	if st.AveragePrice != nil {
		lines = append(lines,
			"Average: "+formatPrice(st.AveragePrice),
			"Cheapest: "+formatPrice(st.MinPrice),
			"Most expensive: "+formatPrice(st.MaxPrice),
		)
	}
	return strings.Join(lines, "\n")
}

// chunk splits text on line boundaries into parts of at most limit runes.
// Lines longer than limit are split at rune boundaries.
func chunk(text string, limit int) []string {
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}
	var parts []string
	var cur strings.Builder
	curLen := 0
	flush := func() {
		if part := strings.TrimRight(cur.String(), "\n"); part != "" {
			parts = append(parts, part)
		}
		cur.Reset()
		curLen = 0
	}
	for _, line := range strings.SplitAfter(text, "\n") {
		n := utf8.RuneCountInString(line)
		if curLen+n > limit {
			flush()
		}
		for n > limit {
			r := []rune(line)
			parts = append(parts, string(r[:limit]))
			line = string(r[limit:])
			n -= limit
		}
		cur.WriteString(line)
		curLen += n
	}
	flush()
	return parts
}
