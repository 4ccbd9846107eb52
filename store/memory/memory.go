// Package memory is an in-process store. Entities live in id-keyed arenas and
// ownership is kept as ordered id lists, so deleting a restaurant is an
// explicit walk down its sections and items.
package memory

import (
	"context"
	"sync"

	"menu-explainer/models"
	"menu-explainer/store"
)

type restaurantRow struct {
	id       int64
	name     string
	sections []int64
}

type sectionRow struct {
	id           int64
	restaurantID int64
	name         string
	items        []int64
}

type Store struct {
	mu sync.RWMutex

	nextID      int64
	order       []int64
	byName      map[string]int64
	restaurants map[int64]*restaurantRow
	sections    map[int64]*sectionRow
	items       map[int64]models.MenuItem
}

var _ store.Store = (*Store)(nil)

func New() *Store {
	s := &Store{}
	s.reset()
	return s
}

func (s *Store) reset() {
	s.nextID = 0
	s.order = nil
	s.byName = make(map[string]int64)
	s.restaurants = make(map[int64]*restaurantRow)
	s.sections = make(map[int64]*sectionRow)
	s.items = make(map[int64]models.MenuItem)
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *Store) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	return nil
}

// ImportRestaurant fails with a unique-name error mirroring the SQL schema
// when the name is already present.
func (s *Store) ImportRestaurant(ctx context.Context, r models.Restaurant) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byName[r.Name]; ok {
		return 0, &DuplicateNameError{Name: r.Name}
	}

	rr := &restaurantRow{id: s.id(), name: r.Name}
	for _, sec := range r.Sections {
		sr := &sectionRow{id: s.id(), restaurantID: rr.id, name: sec.Name}
		for _, it := range sec.Items {
			item := it
			item.ID = s.id()
			item.SectionID = sr.id
			s.items[item.ID] = item
			sr.items = append(sr.items, item.ID)
		}
		s.sections[sr.id] = sr
		rr.sections = append(rr.sections, sr.id)
	}
	s.restaurants[rr.id] = rr
	s.byName[rr.name] = rr.id
	s.order = append(s.order, rr.id)
	return rr.id, nil
}

func (s *Store) DeleteRestaurant(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byName[name]
	if !ok {
		return store.ErrNotFound
	}
	rr := s.restaurants[id]
	for _, sid := range rr.sections {
		for _, iid := range s.sections[sid].items {
			delete(s.items, iid)
		}
		delete(s.sections, sid)
	}
	delete(s.restaurants, id)
	delete(s.byName, name)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Restaurant, 0, len(s.order))
	for _, id := range s.order {
		rr := s.restaurants[id]
		out = append(out, models.Restaurant{ID: rr.id, Name: rr.name})
	}
	return out, nil
}

func (s *Store) GetRestaurant(ctx context.Context, name string) (*models.Restaurant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byName[name]
	if !ok {
		return nil, store.ErrNotFound
	}
	r := s.tree(s.restaurants[id])
	return &r, nil
}

func (s *Store) ListItems(ctx context.Context, scope store.ItemScope) ([]models.ItemRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.ItemRecord
	for _, id := range s.order {
		rr := s.restaurants[id]
		if scope.Restaurant != "" && rr.name != scope.Restaurant {
			continue
		}
		r := s.tree(rr)
		out = append(out, r.Items()...)
	}
	return out, nil
}

func (s *Store) Close() error {
	return nil
}

// tree copies a restaurant out of the arenas. Callers hold the read lock.
func (s *Store) tree(rr *restaurantRow) models.Restaurant {
	r := models.Restaurant{ID: rr.id, Name: rr.name}
	for _, sid := range rr.sections {
		sr := s.sections[sid]
		sec := models.Section{ID: sr.id, RestaurantID: rr.id, Name: sr.name}
		for _, iid := range sr.items {
			sec.Items = append(sec.Items, s.items[iid])
		}
		r.Sections = append(r.Sections, sec)
	}
	return r
}

// DuplicateNameError reports an import of a restaurant name that already exists.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return "memory: restaurant " + e.Name + " already exists"
}
