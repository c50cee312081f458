package server

import (
	"context"
	"encoding/json"
	"github.com/bokysan/basen/enc"
	"github.com/go-chi/chi"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io/ioutil"
	"net/http"
)

type contextKey struct{ name string }

var encodingKey = &contextKey{"encoding"}

// CodecEndpoint serves encode and decode requests for the encoding named in the URL.
type CodecEndpoint struct {
	MaxBodySize int64
}

// ErrorResponse is the JSON body sent back when a decode fails.
type ErrorResponse struct {
	Error  string `json:"error"`
	Kind   string `json:"kind,omitempty"`
	Offset *int   `json:"offset,omitempty"`
}

func (ce *CodecEndpoint) resolveEncoding(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		e, err := enc.ParseEncoding(chi.URLParam(r, "encoding"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), encodingKey, e)))
	})
}

func encodingFrom(r *http.Request) enc.Encoding {
	return r.Context().Value(encodingKey).(enc.Encoding)
}

func (ce *CodecEndpoint) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := ioutil.ReadAll(http.MaxBytesReader(w, r.Body, ce.MaxBodySize))
	if err != nil {
		log.WithError(err).Debugf("Could not read request body: %v", err)
		http.Error(w, "request body too large or unreadable", http.StatusRequestEntityTooLarge)
		return nil, false
	}
	return body, true
}

// Encode answers with the text encoding of the request body.
func (ce *CodecEndpoint) Encode(w http.ResponseWriter, r *http.Request) {
	body, ok := ce.readBody(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=us-ascii")
	_, _ = w.Write([]byte(encodingFrom(r).Encode(body)))
}

// Decode answers with the bytes the request body is the canonical encoding of.
func (ce *CodecEndpoint) Decode(w http.ResponseWriter, r *http.Request) {
	body, ok := ce.readBody(w, r)
	if !ok {
		return
	}
	e := encodingFrom(r)
	data, err := e.Decode(string(body))
	if err != nil {
		log.WithError(err).Debugf("Rejected %v input", e)
		writeDecodeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	_, _ = w.Write(data)
}

func writeDecodeError(w http.ResponseWriter, err error) {
	resp := &ErrorResponse{
		Error: err.Error(),
	}
	var de *enc.DecodeError
	if errors.As(err, &de) {
		resp.Kind = de.Kind.String()
		if de.Offset >= 0 {
			offset := de.Offset
			resp.Offset = &offset
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.WithError(err).Warnf("Could not write error response: %v", err)
	}
}
