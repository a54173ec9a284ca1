package api

import (
	"net/http"

	"github.com/4tbox/toolbox/internal/linediff"
	"github.com/4tbox/toolbox/internal/texttools"
)

type textRequest struct {
	Text string `json:"text"`
}

type outputResponse struct {
	Output string `json:"output"`
}

type compareRequest struct {
	Left   string `json:"left"`
	Right  string `json:"right"`
	Inline bool   `json:"inline"`
}

type compareResponse struct {
	Records []linediff.Record          `json:"records"`
	Summary linediff.Summary           `json:"summary"`
	Inline  map[int][]linediff.Segment `json:"inline,omitempty"`
}

func (s *Server) compareText(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if !decodeBody(w, r, &req) {
		return
	}

	records := linediff.Compute(req.Left, req.Right)
	resp := compareResponse{
		Records: records,
		Summary: linediff.Summarize(req.Left, req.Right, records),
	}
	if req.Inline {
		resp.Inline = linediff.InlineAll(records)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) textStats(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, texttools.Count(req.Text))
}

func (s *Server) reverseText(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, outputResponse{Output: texttools.Reverse(req.Text)})
}

type dedupeRequest struct {
	Text    string                   `json:"text"`
	Options *texttools.DedupeOptions `json:"options"`
}

func (s *Server) dedupeText(w http.ResponseWriter, r *http.Request) {
	var req dedupeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	opts := texttools.DefaultDedupeOptions()
	if req.Options != nil {
		opts = *req.Options
	}
	writeJSON(w, http.StatusOK, texttools.RemoveDuplicates(req.Text, opts))
}

type whitespaceRequest struct {
	Text    string                       `json:"text"`
	Options *texttools.WhitespaceOptions `json:"options"`
}

func (s *Server) cleanWhitespace(w http.ResponseWriter, r *http.Request) {
	var req whitespaceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	opts := texttools.DefaultWhitespaceOptions()
	if req.Options != nil {
		opts = *req.Options
	}
	writeJSON(w, http.StatusOK, texttools.CleanWhitespace(req.Text, opts))
}

type densityResponse struct {
	Words []texttools.WordFrequency `json:"words"`
	Total int                       `json:"total"`
}

func (s *Server) wordDensity(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !decodeBody(w, r, &req) {
		return
	}
	words := texttools.Density(req.Text)
	if words == nil {
		words = []texttools.WordFrequency{}
	}
	total := 0
	for _, wf := range words {
		total += wf.Count
	}
	writeJSON(w, http.StatusOK, densityResponse{Words: words, Total: total})
}

type caseRequest struct {
	Text string             `json:"text"`
	Mode texttools.CaseMode `json:"mode"`
}

func (s *Server) convertCase(w http.ResponseWriter, r *http.Request) {
	var req caseRequest
	if !decodeBody(w, r, &req) {
		return
	}
	out, err := texttools.ConvertCase(req.Text, req.Mode)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, outputResponse{Output: out})
}
