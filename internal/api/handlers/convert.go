package handlers

import (
	"conversion-service/internal/api/dto"
	"conversion-service/internal/domain"
	"conversion-service/internal/platform/metrics"
	"conversion-service/internal/platform/obs"
	"conversion-service/internal/ports"
	"conversion-service/internal/services"
	"net/http"
	"strconv"
)

// ConvertHandler exposes the two's-complement codec over HTTP.
type ConvertHandler struct {
	Recorder ports.ConversionRecorder
	Metrics  *metrics.Metrics
}

// BinaryToDecimal decodes a two's-complement binary string.
func (h *ConvertHandler) BinaryToDecimal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.BinaryToDecimalRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var err error
	defer obs.Time(r.Context(), "binary_to_decimal")(&err)

	value, err := services.TwosComplementToDecimal(req.Binary)
	if h.Metrics != nil {
		h.Metrics.ObserveConversion(domain.OpBinaryToDecimal, err)
	}
	if err != nil {
		writeConversionError(w, r, err)
		return
	}

	out := strconv.FormatInt(int64(value), 10)
	recordConversion(r.Context(), h.Recorder, domain.OpBinaryToDecimal, req.Binary, out)

	writeJSON(w, r, http.StatusOK, dto.BinaryToDecimalResponse{
		Binary:  req.Binary,
		Decimal: value,
	})
}

// DecimalToBinary renders a signed integer at a fixed bit width.
func (h *ConvertHandler) DecimalToBinary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.DecimalToBinaryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var err error
	defer obs.Time(r.Context(), "decimal_to_binary")(&err)

	binary, err := services.DecimalToTwosComplement(req.Decimal, req.Size)
	if h.Metrics != nil {
		h.Metrics.ObserveConversion(domain.OpDecimalToBinary, err)
	}
	if err != nil {
		writeConversionError(w, r, err)
		return
	}

	in := strconv.FormatInt(int64(req.Decimal), 10) + "/" + strconv.FormatUint(uint64(req.Size), 10)
	recordConversion(r.Context(), h.Recorder, domain.OpDecimalToBinary, in, binary)

	writeJSON(w, r, http.StatusOK, dto.DecimalToBinaryResponse{
		Decimal: req.Decimal,
		Size:    req.Size,
		Binary:  binary,
	})
}
