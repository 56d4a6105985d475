package handlers

import (
	"conversion-service/internal/adapters/repositories"
	"conversion-service/internal/api/dto"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGeoHandlerCartesian(t *testing.T) {
	h := &GeoHandler{Recorder: repositories.NewMockHistoryRepository()}

	req := httptest.NewRequest(http.MethodPost, "/geo/cartesian", strings.NewReader(`{"latitude":0,"longitude":0,"height":0}`))
	rr := httptest.NewRecorder()
	h.Cartesian(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rr.Code, rr.Body.String())
	}

	var res dto.CartesianResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if math.Abs(res.X-6378137.0) > 1e-6 || math.Abs(res.Y) > 1e-6 || math.Abs(res.Z) > 1e-6 {
		t.Errorf("cartesian = (%v, %v, %v), want (6378137, 0, 0)", res.X, res.Y, res.Z)
	}
}

func TestGeoHandlerUTMZone(t *testing.T) {
	recorder := repositories.NewMockHistoryRepository()
	h := &GeoHandler{Recorder: recorder}

	req := httptest.NewRequest(http.MethodPost, "/geo/utm-zone", strings.NewReader(`{"latitude":40,"longitude":-75}`))
	rr := httptest.NewRecorder()
	h.UTMZone(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rr.Code, rr.Body.String())
	}

	var res dto.UTMZoneResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Zone != 18 || res.Band != "T" || res.Locator != "18T" {
		t.Errorf("utm zone = %+v, want zone 18 band T", res)
	}

	if len(recorder.Records) != 1 || recorder.Records[0].Output != "18T" {
		t.Errorf("unexpected history records: %+v", recorder.Records)
	}
}

func TestGeoHandlerUTMZoneOutOfRange(t *testing.T) {
	recorder := repositories.NewMockHistoryRepository()
	h := &GeoHandler{Recorder: recorder}

	req := httptest.NewRequest(http.MethodPost, "/geo/utm-zone", strings.NewReader(`{"latitude":90.1,"longitude":0}`))
	rr := httptest.NewRecorder()
	h.UTMZone(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if len(recorder.Records) != 0 {
		t.Errorf("failed conversions must not be recorded, got %+v", recorder.Records)
	}
}
