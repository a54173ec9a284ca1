package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/4tbox/toolbox/internal/catalog"
)

type toolsResponse struct {
	Tools      []catalog.Tool `json:"tools"`
	Categories []string       `json:"categories"`
	Count      int            `json:"count"`
}

// listTools handles GET /api/v1/tools. Optional query parameters:
// category filters by category, popular=N returns up to N popular tools.
func (s *Server) listTools(w http.ResponseWriter, r *http.Request) {
	if s.catalog == nil {
		writeError(w, http.StatusServiceUnavailable, "catalog not loaded")
		return
	}

	var tools []catalog.Tool
	q := r.URL.Query()
	switch {
	case q.Get("category") != "":
		tools = s.catalog.ByCategory(q.Get("category"))
	case q.Has("popular"):
		limit := 0
		if v := q.Get("popular"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				writeError(w, http.StatusBadRequest, "popular must be a non-negative integer")
				return
			}
			limit = n
		}
		tools = s.catalog.Popular(limit)
	default:
		tools = s.catalog.All()
	}
	if tools == nil {
		tools = []catalog.Tool{}
	}

	writeJSON(w, http.StatusOK, toolsResponse{
		Tools:      tools,
		Categories: s.catalog.Categories(),
		Count:      len(tools),
	})
}

// getTool handles GET /api/v1/tools/{id}.
func (s *Server) getTool(w http.ResponseWriter, r *http.Request) {
	if s.catalog == nil {
		writeError(w, http.StatusServiceUnavailable, "catalog not loaded")
		return
	}
	id := chi.URLParam(r, "id")
	tool, ok := s.catalog.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown tool: "+id)
		return
	}
	writeJSON(w, http.StatusOK, tool)
}
