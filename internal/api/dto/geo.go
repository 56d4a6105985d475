package dto

type CartesianRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Height    float64 `json:"height"`
}

type CartesianResponse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type UTMZoneRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type UTMZoneResponse struct {
	Zone    int    `json:"zone"`
	Band    string `json:"band"`
	Locator string `json:"locator"`
}
