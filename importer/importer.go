// Package importer loads a menu document (JSON or YAML) into a store. It is
// the only write path: the HTTP API and the bot are read-only.
package importer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apperrors "menu-explainer/errors"
	"menu-explainer/models"
	"menu-explainer/store"
)

type Format string

const (
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf picks a format from a file extension, FormatAuto when unknown.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatAuto
}

// ParseFile reads and parses the document at path.
func ParseFile(path string) ([]models.Restaurant, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeNotFound, "cannot open menu document", err)
	}
	defer f.Close()
	return Parse(f, FormatOf(path))
}

// Parse decodes a document of the form
//
//	{"<restaurant>": {"sections": [{"name": ..., "items": [{"name", "description", "price"}]}]}}
//
// Restaurants keep document order. A repeated restaurant key keeps its first
// position and its last value.
func Parse(r io.Reader, format Format) ([]models.Restaurant, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "read menu document", err)
	}
	if format == FormatAuto {
		format = FormatYAML
		if sniffJSON(b) {
			format = FormatJSON
		}
	}

	var doc any
	switch format {
	case FormatJSON:
		doc, err = decodeJSON(bytes.NewReader(b))
	case FormatYAML:
		doc, err = decodeYAML(bytes.NewReader(b))
	default:
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest, "unknown document format",
			map[string]any{"format": string(format)})
	}
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid %s menu document", format), err, map[string]any{"format": string(format)})
	}
	return restaurants(doc)
}

func restaurants(doc any) ([]models.Restaurant, error) {
	root, ok := doc.(object)
	if !ok {
		return nil, invalid("menu document must be an object keyed by restaurant name", "")
	}

	var out []models.Restaurant
	pos := map[string]int{}
	for _, f := range root {
		r, err := restaurant(f.key, f.val)
		if err != nil {
			return nil, err
		}
		if i, seen := pos[f.key]; seen {
			out[i] = r
			continue
		}
		pos[f.key] = len(out)
		out = append(out, r)
	}
	return out, nil
}

func restaurant(name string, v any) (models.Restaurant, error) {
	r := models.Restaurant{Name: name}
	if v == nil {
		return r, nil
	}
	body, ok := v.(object)
	if !ok {
		return r, invalid("restaurant entry must be an object", name)
	}
	raw, _ := body.get("sections")
	if raw == nil {
		return r, nil
	}
	sections, ok := raw.([]any)
	if !ok {
		return r, invalid("sections must be a list", name)
	}
	for _, sv := range sections {
		so, ok := sv.(object)
		if !ok {
			return r, invalid("section must be an object", name)
		}
		sname, _ := so.get("name")
		sec := models.Section{Name: text(sname), Items: []models.MenuItem{}}

		rawItems, _ := so.get("items")
		if rawItems != nil {
			items, ok := rawItems.([]any)
			if !ok {
				return r, invalid(fmt.Sprintf("items of section %q must be a list", sec.Name), name)
			}
			for _, iv := range items {
				obj, ok := iv.(object)
				if !ok {
					return r, invalid(fmt.Sprintf("item in section %q must be an object", sec.Name), name)
				}
				sec.Items = append(sec.Items, item(obj))
			}
		}
		r.Sections = append(r.Sections, sec)
	}
	return r, nil
}

func item(o object) models.MenuItem {
	name, _ := o.get("name")
	it := models.MenuItem{Name: text(name)}
	if d, _ := o.get("description"); d != nil {
		if s := text(d); s != "" || d == "" {
			it.Description = models.String(s)
		}
	}
	p, _ := o.get("price")
	it.Price = Price(p)
	return it
}

func invalid(msg, restaurant string) error {
	ctx := map[string]any{}
	if restaurant != "" {
		ctx["restaurant_name"] = restaurant
	}
	return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest, msg, ctx)
}

type Options struct {
	// Append keeps existing data and replaces only restaurants named in the
	// document. Without it the schema is dropped and recreated first.
	Append bool
}

// Summary counts what an Import stored.
type Summary struct {
	Restaurants int
	Sections    int
	Items       int
	Unpriced    int
}

// Import writes restaurants to w one tree at a time.
func Import(ctx context.Context, w store.Writer, rs []models.Restaurant, opts Options) (Summary, error) {
	var sum Summary
	if !opts.Append {
		slog.Info("resetting menu schema")
		if err := w.Reset(ctx); err != nil {
			return sum, apperrors.Wrap(apperrors.ErrCodeInternal, "reset store", err)
		}
	}

	for _, r := range rs {
		if opts.Append {
			if err := w.DeleteRestaurant(ctx, r.Name); err != nil && !errors.Is(err, store.ErrNotFound) {
				return sum, apperrors.WrapWithContext(apperrors.ErrCodeInternal, "replace restaurant", err,
					map[string]any{"restaurant_name": r.Name})
			}
		}
		id, err := w.ImportRestaurant(ctx, r)
		if err != nil {
			return sum, apperrors.WrapWithContext(apperrors.ErrCodeInternal, "import restaurant", err,
				map[string]any{"restaurant_name": r.Name})
		}

		items := r.Items()
		unpriced := 0
		for _, it := range items {
			if !it.HasPrice() {
				unpriced++
			}
		}
		sum.Restaurants++
		sum.Sections += len(r.Sections)
		sum.Items += len(items)
		sum.Unpriced += unpriced
		slog.Info("restaurant imported",
			"name", r.Name, "id", id, "sections", len(r.Sections), "items", len(items), "unpriced", unpriced)
	}
	return sum, nil
}
