package api

import (
	"net/http"
	"strconv"

	"github.com/4tbox/toolbox/internal/devtools"
)

const defaultIndent = 2

type formatJSONRequest struct {
	JSON   string `json:"json"`
	Indent *int   `json:"indent"`
}

func (s *Server) formatJSON(w http.ResponseWriter, r *http.Request) {
	var req formatJSONRequest
	if !decodeBody(w, r, &req) {
		return
	}
	indent := defaultIndent
	if req.Indent != nil {
		indent = *req.Indent
	}
	out, err := devtools.FormatJSON(req.JSON, indent)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, outputResponse{Output: out})
}

func (s *Server) minifyJSON(w http.ResponseWriter, r *http.Request) {
	var req formatJSONRequest
	if !decodeBody(w, r, &req) {
		return
	}
	out, err := devtools.MinifyJSON(req.JSON)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, outputResponse{Output: out})
}

type jwtRequest struct {
	Token string `json:"token"`
}

func (s *Server) decodeJWT(w http.ResponseWriter, r *http.Request) {
	var req jwtRequest
	if !decodeBody(w, r, &req) {
		return
	}
	tok, err := devtools.DecodeJWT(req.Token, s.now())
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, tok)
}

type regexRequest struct {
	Pattern string `json:"pattern"`
	Flags   string `json:"flags"`
	Text    string `json:"text"`
}

func (s *Server) testRegex(w http.ResponseWriter, r *http.Request) {
	var req regexRequest
	if !decodeBody(w, r, &req) {
		return
	}
	res, err := devtools.TestRegex(req.Pattern, req.Flags, req.Text)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// newUUIDs handles GET /api/v1/dev/uuid?count=N.
func (s *Server) newUUIDs(w http.ResponseWriter, r *http.Request) {
	count := 1
	if v := r.URL.Query().Get("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "count must be an integer")
			return
		}
		count = n
	}
	ids, err := devtools.NewUUIDs(count)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"uuids": ids})
}
