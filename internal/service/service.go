package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/umahmood/haversine"

	"github.com/katiamach/hivebox/internal/config"
	"github.com/katiamach/hivebox/internal/logger"
	"github.com/katiamach/hivebox/internal/metrics"
	"github.com/katiamach/hivebox/internal/model"
	"github.com/katiamach/hivebox/internal/opensensemap"
)

// MaxReadingAge is the staleness window; older readings are not averaged.
const MaxReadingAge = time.Hour

var (
	ErrNoData          = errors.New("no temperature data available from the last hour")
	ErrUnsupportedUnit = errors.New("unsupported temperature unit")
)

// temperatureTitles are the sensor titles openSenseMap uses for temperature,
// depending on the locale the box was registered with.
var temperatureTitles = map[string]struct{}{
	"Temperature": {},
	"Temperatur":  {},
}

//go:generate mockgen -source=service.go -destination=mock/mock.go SensorClient

// SensorClient provides necessary openSenseMap methods.
type SensorClient interface {
	FetchStation(ctx context.Context, stationID string) (*model.Station, error)
	FetchStationSensors(ctx context.Context, stationID string) (*model.StationReadings, error)
}

// SensorService provides temperature aggregation functionality.
type SensorService struct {
	client    SensorClient
	boxIDs    []string
	reference *config.Point
	now       func() time.Time
}

// New creates new SensorService averaging the given boxes.
// Reference may be nil, then box distances are not computed.
func New(client SensorClient, boxIDs []string, reference *config.Point) *SensorService {
	return &SensorService{
		client:    client,
		boxIDs:    boxIDs,
		reference: reference,
		now:       time.Now,
	}
}

// CurrentTemperature averages the configured boxes.
func (s *SensorService) CurrentTemperature(ctx context.Context) (*model.Temperature, error) {
	avg, err := s.AverageTemperature(ctx, s.boxIDs)
	if err != nil {
		return nil, err
	}

	return &model.Temperature{Value: avg, Unit: model.CelsiusUnit}, nil
}

// AverageTemperature fetches the given boxes one after another and averages
// their temperature readings of the last hour, rounded to one decimal.
// The first failing box aborts the whole call with its error, and a canceled
// ctx stops before the next box is fetched.
func (s *SensorService) AverageTemperature(ctx context.Context, boxIDs []string) (float64, error) {
	now := s.now()
	temperatures := make([]float64, 0, len(boxIDs))

	for _, boxID := range boxIDs {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		readings, err := s.client.FetchStationSensors(ctx, boxID)
		if err != nil {
			return 0, err
		}

		value, ok, err := temperatureReading(readings.Sensors, now)
		if err != nil {
			return 0, err
		}
		if ok {
			temperatures = append(temperatures, value)
		}
	}

	if len(temperatures) == 0 {
		return 0, ErrNoData
	}

	avg := mean(temperatures)
	metrics.AverageTemperature.Set(avg)

	logger.WithFields(logrus.Fields{
		"boxes":    len(boxIDs),
		"readings": len(temperatures),
		"average":  avg,
	}).Debugln("average temperature computed")

	return avg, nil
}

// temperatureReading inspects the first temperature sensor of a box.
// ok is false when the box has no temperature sensor, no measurement or a stale one.
func temperatureReading(sensors []*model.Sensor, now time.Time) (float64, bool, error) {
	for _, sensor := range sensors {
		if _, isTemperature := temperatureTitles[sensor.Title]; !isTemperature {
			continue
		}

		if sensor.Unit != model.CelsiusUnit {
			return 0, false, fmt.Errorf("%w '%s' for sensor %s, only %s is supported",
				ErrUnsupportedUnit, sensor.Unit, sensor.ID, model.CelsiusUnit)
		}

		if sensor.LastMeasurement == nil {
			metrics.StationReadings.WithLabelValues(metrics.ReadingMissing).Inc()
			return 0, false, nil
		}

		age := now.Sub(sensor.LastMeasurement.CreatedAt)
		metrics.ReadingAge.Observe(age.Seconds())

		if age > MaxReadingAge {
			metrics.StationReadings.WithLabelValues(metrics.ReadingStale).Inc()
			return 0, false, nil
		}

		value, err := sensor.LastMeasurement.Float()
		if err != nil {
			return 0, false, fmt.Errorf("%w: invalid value %q of sensor %s",
				opensensemap.ErrRemote, sensor.LastMeasurement.Value, sensor.ID)
		}

		metrics.StationReadings.WithLabelValues(metrics.ReadingIncluded).Inc()
		return value, true, nil
	}

	metrics.StationReadings.WithLabelValues(metrics.ReadingMissing).Inc()
	return 0, false, nil
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}

	// ties go to even: 22.25 -> 22.2
	return math.RoundToEven(sum/float64(len(values))*10) / 10
}

// BoxDetails gets a box and its distance from the reference point, if one is configured.
func (s *SensorService) BoxDetails(ctx context.Context, boxID string) (*model.BoxDetails, error) {
	station, err := s.client.FetchStation(ctx, boxID)
	if err != nil {
		return nil, err
	}

	details := &model.BoxDetails{Station: station}

	if s.reference == nil {
		return details, nil
	}

	lat, okLat := station.CurrentLocation.Lat()
	lon, okLon := station.CurrentLocation.Lon()
	if !okLat || !okLon {
		logger.Warn(fmt.Sprintf("box %s has no usable location", boxID))
		return details, nil
	}

	from := haversine.Coord{Lat: s.reference.Lat, Lon: s.reference.Lon}
	to := haversine.Coord{Lat: lat, Lon: lon}
	_, km := haversine.Distance(from, to)

	km = math.Round(km*100) / 100
	details.DistanceKm = &km

	return details, nil
}
