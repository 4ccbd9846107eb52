package server

import (
	"net/http"

	"menu-explainer/services"
)

func (s *Server) handleListRestaurants(w http.ResponseWriter, r *http.Request) {
	names, err := s.service.ListRestaurants(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, names)
}

func (s *Server) handleGetMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := s.service.GetMenu(r.Context(), r.PathValue("name"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, newMenu(menu))
}

func (s *Server) handleListSections(w http.ResponseWriter, r *http.Request) {
	names, err := s.service.ListSections(r.Context(), r.PathValue("name"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, names)
}

func (s *Server) handleSectionItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.service.GetSectionItems(r.Context(), r.PathValue("name"), r.PathValue("section"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, newItems(items))
}

func (s *Server) handleRestaurantItems(w http.ResponseWriter, r *http.Request) {
	filter, err := itemFilterParams(r.URL.Query())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	items, err := s.service.GetRestaurantItems(r.Context(), r.PathValue("name"), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, newSectionItems(items))
}

func (s *Server) handleSearchItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter, err := itemFilterParams(q)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	_, maxLimit := s.service.Limits()
	limit, err := limitParam(q, maxLimit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	items, err := s.service.SearchItems(r.Context(), services.ItemQuery{
		ItemFilter: filter,
		Text:       q.Get("query"),
		Restaurant: q.Get("restaurant"),
		Limit:      limit,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, newSearchItems(items))
}

func (s *Server) handlePriceRange(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	minPrice, err := requiredFloat(q, "min_price")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	maxPrice, err := requiredFloat(q, "max_price")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	_, maxLimit := s.service.Limits()
	limit, err := limitParam(q, maxLimit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	items, err := s.service.SearchByPriceRange(r.Context(), minPrice, maxPrice, limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, newSearchItems(items))
}

func (s *Server) handleRestaurantsWithItem(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("item_name") {
		writeServiceError(w, r, badParam("item_name", "item_name is required", ""))
		return
	}
	names, err := s.service.FindRestaurantsWithItem(r.Context(), q.Get("item_name"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, names)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.service.GetRestaurantStats(r.Context(), r.PathValue("name"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, newStats(st))
}
