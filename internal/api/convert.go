package api

import (
	"errors"
	"net/http"

	"github.com/4tbox/toolbox/internal/csvjson"
)

type csvToJSONRequest struct {
	CSV    string `json:"csv"`
	Pretty bool   `json:"pretty"`
}

type csvToJSONResponse struct {
	Records []csvjson.Record `json:"records"`
	Count   int              `json:"count"`
	Output  string           `json:"output"`
}

func (s *Server) csvToJSON(w http.ResponseWriter, r *http.Request) {
	var req csvToJSONRequest
	if !decodeBody(w, r, &req) {
		return
	}

	records := csvjson.ToJSON(req.CSV)
	out, err := csvjson.Marshal(records, req.Pretty)
	if err != nil {
		s.logger.Error("failed to marshal csv records", "error", err)
		writeError(w, http.StatusInternalServerError, "conversion failed")
		return
	}
	writeJSON(w, http.StatusOK, csvToJSONResponse{
		Records: records,
		Count:   len(records),
		Output:  string(out),
	})
}

type jsonToCSVRequest struct {
	JSON string `json:"json"`
}

type jsonToCSVResponse struct {
	CSV string `json:"csv"`
}

func (s *Server) jsonToCSV(w http.ResponseWriter, r *http.Request) {
	var req jsonToCSVRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := csvjson.ToCSV(req.JSON)
	if err != nil {
		if errors.Is(err, csvjson.ErrInvalidJSON) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.logger.Error("json to csv failed", "error", err)
		writeError(w, http.StatusInternalServerError, "conversion failed")
		return
	}
	writeJSON(w, http.StatusOK, jsonToCSVResponse{CSV: out})
}
