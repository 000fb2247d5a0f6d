package model

import (
	"strconv"
	"time"
)

// CelsiusUnit is the only temperature unit the service accepts.
const CelsiusUnit = "°C"

// Station is a senseBox snapshot as returned by GET /boxes/{id}.
type Station struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Exposure          string    `json:"exposure"`
	Model             string    `json:"model"`
	LastMeasurementAt time.Time `json:"lastMeasurementAt"`
	WebLink           *string   `json:"weblink,omitempty"`
	Description       *string   `json:"description,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
	GroupTag          []string  `json:"grouptag"`
	CurrentLocation   Location  `json:"currentLocation"`
	Image             *string   `json:"image,omitempty"`
	Sensors           []*Sensor `json:"sensors"`
}

// Location is a GeoJSON point; Coordinates are longitude, latitude and optionally height.
type Location struct {
	Coordinates []float64 `json:"coordinates"`
	Type        string    `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
}

// Lat returns the latitude, ok is false when coordinates are incomplete.
func (l Location) Lat() (float64, bool) {
	if len(l.Coordinates) < 2 {
		return 0, false
	}
	return l.Coordinates[1], true
}

// Lon returns the longitude, ok is false when coordinates are incomplete.
func (l Location) Lon() (float64, bool) {
	if len(l.Coordinates) < 2 {
		return 0, false
	}
	return l.Coordinates[0], true
}

// StationReadings is the response to GET /boxes/{id}/sensors.
type StationReadings struct {
	ID      string    `json:"id"`
	Sensors []*Sensor `json:"sensors"`
}

// Sensor is a single measurement channel of a station.
type Sensor struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	SensorType      string           `json:"sensorType"`
	Unit            string           `json:"unit"`
	Icon            *string          `json:"icon,omitempty"`
	LastMeasurement *LastMeasurement `json:"lastMeasurement,omitempty"`
}

// LastMeasurement is the most recent value reported by a sensor.
// Value is kept as the text openSenseMap sends, e.g. "12.10".
type LastMeasurement struct {
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
}

// Float parses Value.
func (m *LastMeasurement) Float() (float64, error) {
	return strconv.ParseFloat(m.Value, 64)
}

// Temperature is an averaged temperature with its unit.
type Temperature struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// BoxDetails is a station with its distance from the configured reference point.
type BoxDetails struct {
	*Station
	DistanceKm *float64 `json:"distanceKm,omitempty"`
}

// Version describes the running build.
type Version struct {
	Version string `json:"version"`
}
