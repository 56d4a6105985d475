package handlers

import (
	"conversion-service/internal/api/dto"
	"conversion-service/internal/domain"
	"conversion-service/internal/platform/metrics"
	"conversion-service/internal/platform/obs"
	"conversion-service/internal/ports"
	"conversion-service/internal/services"
	"fmt"
	"net/http"
)

// GeoHandler exposes the geodetic transform and the UTM resolver over HTTP.
type GeoHandler struct {
	Recorder ports.ConversionRecorder
	Metrics  *metrics.Metrics
}

// Cartesian converts geodetic coordinates to earth-centered XYZ. The
// underlying transform validates nothing, so this endpoint never rejects a
// coordinate; garbage in, garbage out.
func (h *GeoHandler) Cartesian(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.CartesianRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	defer obs.Time(r.Context(), "geodetic_to_cartesian")(nil)

	p := services.GeodeticToCartesian(req.Latitude, req.Longitude, req.Height)
	if h.Metrics != nil {
		h.Metrics.ObserveConversion(domain.OpGeodeticToCartesian, nil)
	}

	in := fmt.Sprintf("%v,%v,%v", req.Latitude, req.Longitude, req.Height)
	out := fmt.Sprintf("%v,%v,%v", p.X, p.Y, p.Z)
	recordConversion(r.Context(), h.Recorder, domain.OpGeodeticToCartesian, in, out)

	writeJSON(w, r, http.StatusOK, dto.CartesianResponse{X: p.X, Y: p.Y, Z: p.Z})
}

// UTMZone resolves the UTM zone number and MGRS band letter.
func (h *GeoHandler) UTMZone(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.UTMZoneRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var err error
	defer obs.Time(r.Context(), "utm_zone")(&err)

	locator, err := services.UTMZoneFor(req.Latitude, req.Longitude)
	if h.Metrics != nil {
		h.Metrics.ObserveConversion(domain.OpUTMZone, err)
	}
	if err != nil {
		writeConversionError(w, r, err)
		return
	}

	in := fmt.Sprintf("%v,%v", req.Latitude, req.Longitude)
	recordConversion(r.Context(), h.Recorder, domain.OpUTMZone, in, locator.String())

	writeJSON(w, r, http.StatusOK, dto.UTMZoneResponse{
		Zone:    locator.Zone,
		Band:    string(locator.Band),
		Locator: locator.String(),
	})
}
