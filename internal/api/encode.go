package api

import (
	"net/http"

	"github.com/4tbox/toolbox/internal/codec"
)

type encodeRequest struct {
	Text string `json:"text"`
	// Mode is "encode" (default) or "decode".
	Mode string `json:"mode"`
}

func (s *Server) base64(w http.ResponseWriter, r *http.Request) {
	s.runCodec(w, r, codec.EncodeBase64, codec.DecodeBase64)
}

func (s *Server) urlEncode(w http.ResponseWriter, r *http.Request) {
	s.runCodec(w, r, codec.EncodeURL, codec.DecodeURL)
}

func (s *Server) runCodec(w http.ResponseWriter, r *http.Request, encode func(string) string, decode func(string) (string, error)) {
	var req encodeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	switch req.Mode {
	case "", "encode":
		writeJSON(w, http.StatusOK, outputResponse{Output: encode(req.Text)})
	case "decode":
		out, err := decode(req.Text)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, outputResponse{Output: out})
	default:
		writeError(w, http.StatusBadRequest, "mode must be encode or decode")
	}
}
