package handlers

import (
	"conversion-service/internal/api/dto"
	"conversion-service/internal/ports"
	"log"
	"net/http"
	"strconv"
)

// HistoryHandler exposes read-only access to the conversion audit trail.
type HistoryHandler struct {
	Recorder ports.ConversionRecorder
}

const defaultHistoryLimit = 50

func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 500 {
			writeError(w, r, http.StatusBadRequest, "limit must be an integer between 1 and 500")
			return
		}
		limit = n
	}

	records, err := h.Recorder.ListRecent(r.Context(), limit)
	if err != nil {
		log.Printf("list history failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListHistoryResponse{
		Records: make([]dto.ConversionRecordResponse, 0, len(records)),
	}
	for _, rec := range records {
		res.Records = append(res.Records, dto.ConversionRecordResponse{
			ID:        rec.ID,
			Operation: rec.Operation,
			Input:     rec.Input,
			Output:    rec.Output,
			CreatedAt: rec.CreatedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
