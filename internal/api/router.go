package api

import (
	"conversion-service/internal/api/handlers"
	"conversion-service/internal/platform/metrics"
	"conversion-service/internal/ports"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters).
func NewRouter(recorder ports.ConversionRecorder, m *metrics.Metrics) http.Handler {
	mux := http.NewServeMux()

	convertHandler := &handlers.ConvertHandler{Recorder: recorder, Metrics: m}
	geoHandler := &handlers.GeoHandler{Recorder: recorder, Metrics: m}
	historyHandler := &handlers.HistoryHandler{Recorder: recorder}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/convert/binary-to-decimal", convertHandler.BinaryToDecimal)
	mux.HandleFunc("/convert/decimal-to-binary", convertHandler.DecimalToBinary)
	mux.HandleFunc("/geo/cartesian", geoHandler.Cartesian)
	mux.HandleFunc("/geo/utm-zone", geoHandler.UTMZone)
	mux.HandleFunc("/history", historyHandler.List)
	mux.Handle("/metrics", promhttp.Handler())

	return requestIDMiddleware(loggingMiddleware(m, mux))
}
