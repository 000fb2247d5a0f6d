package opensensemap

import (
	"errors"
	"time"

	"github.com/katiamach/hivebox/internal/model"
)

// boxResponse is the body of GET /boxes/{id}.
type boxResponse struct {
	ID                string            `json:"_id"`
	Name              string            `json:"name"`
	Exposure          string            `json:"exposure"`
	Model             string            `json:"model"`
	LastMeasurementAt *time.Time        `json:"lastMeasurementAt"`
	WebLink           *string           `json:"weblink"`
	Description       *string           `json:"description"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
	GroupTag          []string          `json:"grouptag"`
	CurrentLocation   locationResponse  `json:"currentLocation"`
	Image             *string           `json:"image"`
	Sensors           []*sensorResponse `json:"sensors"`
}

type locationResponse struct {
	Coordinates []float64 `json:"coordinates"`
	Type        string    `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
}

// sensorsResponse is the body of GET /boxes/{id}/sensors.
type sensorsResponse struct {
	ID      string            `json:"_id"`
	Sensors []*sensorResponse `json:"sensors"`
}

type sensorResponse struct {
	ID              string                   `json:"_id"`
	Title           string                   `json:"title"`
	SensorType      string                   `json:"sensorType"`
	Unit            string                   `json:"unit"`
	Icon            *string                  `json:"icon"`
	LastMeasurement *lastMeasurementResponse `json:"lastMeasurement"`
}

// lastMeasurementResponse carries the value as text, e.g. "12.10".
type lastMeasurementResponse struct {
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r *boxResponse) toModel() (*model.Station, error) {
	if r.ID == "" {
		return nil, errors.New("missing box id")
	}

	sensors := toSensors(r.Sensors)

	station := &model.Station{
		ID:          r.ID,
		Name:        r.Name,
		Exposure:    r.Exposure,
		Model:       r.Model,
		WebLink:     r.WebLink,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		GroupTag:    r.GroupTag,
		CurrentLocation: model.Location{
			Coordinates: r.CurrentLocation.Coordinates,
			Type:        r.CurrentLocation.Type,
			Timestamp:   r.CurrentLocation.Timestamp,
		},
		Image:   r.Image,
		Sensors: sensors,
	}

	// boxes that never reported have no lastMeasurementAt
	if r.LastMeasurementAt != nil {
		station.LastMeasurementAt = *r.LastMeasurementAt
	}

	return station, nil
}

func (r *sensorsResponse) toModel() (*model.StationReadings, error) {
	if r.ID == "" {
		return nil, errors.New("missing box id")
	}

	sensors := toSensors(r.Sensors)

	return &model.StationReadings{
		ID:      r.ID,
		Sensors: sensors,
	}, nil
}

// isEmpty reports whether lastMeasurement was null or {}.
func (m *lastMeasurementResponse) isEmpty() bool {
	return m == nil || (m.Value == "" && m.CreatedAt.IsZero())
}

func toSensors(in []*sensorResponse) []*model.Sensor {
	sensors := make([]*model.Sensor, 0, len(in))

	for _, s := range in {
		if s == nil {
			continue
		}

		sensor := &model.Sensor{
			ID:         s.ID,
			Title:      s.Title,
			SensorType: s.SensorType,
			Unit:       s.Unit,
			Icon:       s.Icon,
		}

		if !s.LastMeasurement.isEmpty() {
			sensor.LastMeasurement = &model.LastMeasurement{
				Value:     s.LastMeasurement.Value,
				CreatedAt: s.LastMeasurement.CreatedAt,
			}
		}

		sensors = append(sensors, sensor)
	}

	return sensors
}
