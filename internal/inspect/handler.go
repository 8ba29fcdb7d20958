package inspect

import (
	"errors"
	"io"
	"net/http"
	"unicode/utf8"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	getAck  = "GET request received"
	postAck = "POST request received"
)

type HandlerParams struct {
	fx.In

	Config    Config
	Dumper    *Dumper
	Validator *Validator
	Log       *zap.Logger
}

// Handler is the request logger/responder: it dumps every GET and
// POST to the console and answers with a fixed plaintext body.
type Handler struct {
	config    Config
	dumper    *Dumper
	validator *Validator
	log       *zap.Logger
}

func NewHandler(params HandlerParams) *Handler {
	return &Handler{
		config:    params.Config,
		dumper:    params.Dumper,
		validator: params.Validator,
		log:       params.Log,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.serveGet(w, r)
	case http.MethodPost:
		h.servePost(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) serveGet(w http.ResponseWriter, r *http.Request) {
	h.dump(NewRecord(r))
	h.ack(w, getAck)
}

func (h *Handler) servePost(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)

	// A missing Content-Length reads as an empty body; a malformed
	// one is rejected with 400 by net/http before we get here.
	reader := r.Body
	if h.config.MaxBodyBytes > 0 {
		reader = http.MaxBytesReader(w, r.Body, h.config.MaxBodyBytes)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			log.Warn("request body too large", zap.Int64("limit", maxBytesErr.Limit))
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}

		log.Warn("failed to read body", zap.Error(err))
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	if !utf8.Valid(body) {
		log.Warn("request body is not valid utf-8", zap.Int("size", len(body)))
		http.Error(w, "request body is not valid utf-8", http.StatusBadRequest)
		return
	}

	rec := NewRecord(r)
	rec.Body = string(body)
	rec.HasBody = true

	if h.validator != nil && len(body) > 0 {
		rec.Schema = h.validator.Validate(body)
	}

	h.dump(rec)
	h.ack(w, postAck)
}

func (h *Handler) dump(rec Record) {
	if err := h.dumper.Dump(rec); err != nil {
		h.log.Warn("failed to write dump", zap.Error(err))
	}
}

func (h *Handler) ack(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte(body)); err != nil {
		h.log.Debug("failed to write response", zap.Error(err))
	}
}
