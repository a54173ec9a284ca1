package api

import (
	"net/http"
	"strconv"

	"github.com/4tbox/toolbox/internal/calc"
	"github.com/4tbox/toolbox/internal/netinfo"
	"github.com/4tbox/toolbox/internal/texttools"
)

const defaultLoremParagraphs = 3

func (s *Server) youtubeRatio(w http.ResponseWriter, r *http.Request) {
	var req calc.ChannelStats
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Subscribers < 0 || req.Views < 0 || req.Videos < 0 {
		writeError(w, http.StatusUnprocessableEntity, "subscribers, views and videos must not be negative")
		return
	}
	writeJSON(w, http.StatusOK, calc.Ratio(req))
}

// lorem handles GET /api/v1/generate/lorem?paragraphs=N.
func (s *Server) lorem(w http.ResponseWriter, r *http.Request) {
	n := defaultLoremParagraphs
	if v := r.URL.Query().Get("paragraphs"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "paragraphs must be an integer")
			return
		}
		n = parsed
	}
	out, err := texttools.Lorem(n)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, outputResponse{Output: out})
}

// clientIP reports the caller's address. The route runs behind RealIP, so
// X-Real-IP and X-Forwarded-For from a proxy take precedence.
func (s *Server) clientIP(w http.ResponseWriter, r *http.Request) {
	info, err := netinfo.Describe(r.RemoteAddr)
	if err != nil {
		s.logger.Warn("unparseable remote address", "remote_addr", r.RemoteAddr, "error", err)
		writeError(w, http.StatusInternalServerError, "could not determine client address")
		return
	}
	writeJSON(w, http.StatusOK, info)
}
