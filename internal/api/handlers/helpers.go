package handlers

import (
	"context"
	"conversion-service/internal/domain"
	"conversion-service/internal/platform/obs"
	"conversion-service/internal/ports"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeConversionError maps a core error onto an HTTP response: typed
// conversion failures are the client's fault, anything else is ours.
func writeConversionError(w http.ResponseWriter, r *http.Request, err error) {
	var convErr *domain.ConversionError
	if errors.As(err, &convErr) {
		writeError(w, r, http.StatusBadRequest, convErr.Error())
		return
	}

	log.Printf("conversion failed: req_id=%s err=%v", obs.RequestID(r.Context()), err)
	writeError(w, r, http.StatusInternalServerError, "internal server error")
}

// decodeJSON reads exactly one JSON object from the request body.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}

	return true
}

// recordConversion appends an audit record. Recording failures are logged
// and swallowed: the conversion already succeeded and its result is what
// the client is owed.
func recordConversion(ctx context.Context, recorder ports.ConversionRecorder, op, input, output string) {
	if recorder == nil {
		return
	}

	rec := domain.ConversionRecord{
		ID:        uuid.NewString(),
		Operation: op,
		Input:     input,
		Output:    output,
		CreatedAt: time.Now().UTC(),
	}
	if err := recorder.Record(ctx, rec); err != nil {
		log.Printf("record conversion failed: req_id=%s op=%s err=%v", obs.RequestID(ctx), op, err)
	}
}
