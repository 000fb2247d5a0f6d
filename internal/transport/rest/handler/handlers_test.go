package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/tj/assert"

	"github.com/katiamach/hivebox/internal/model"
	"github.com/katiamach/hivebox/internal/opensensemap"
	"github.com/katiamach/hivebox/internal/service"

	mock "github.com/katiamach/hivebox/internal/transport/rest/handler/mock"
)

var errTest = errors.New("test error")

func TestGetTemperatureHandler(t *testing.T) {
	cases := []struct {
		name            string
		temperature     *model.Temperature
		serviceErr      error
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:           "ok",
			temperature:    &model.Temperature{Value: 22.5, Unit: "°C"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "negative value",
			temperature:    &model.Temperature{Value: -5.5, Unit: "°C"},
			expectedStatus: http.StatusOK,
		},
		{
			name:            "no data",
			serviceErr:      service.ErrNoData,
			expectedStatus:  http.StatusServiceUnavailable,
			expectedMessage: "No temperature data available from the last hour",
		},
		{
			name:            "unsupported unit",
			serviceErr:      fmt.Errorf("%w '°F' for sensor sensor-123, only °C is supported", service.ErrUnsupportedUnit),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "unsupported temperature unit '°F' for sensor sensor-123, only °C is supported",
		},
		{
			name:            "box not found",
			serviceErr:      fmt.Errorf("%w: %s", opensensemap.ErrNotFound, "test-id"),
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "senseBox not found: test-id",
		},
		{
			name:            "remote error",
			serviceErr:      fmt.Errorf("%w: unexpected status 500", opensensemap.ErrRemote),
			expectedStatus:  http.StatusBadGateway,
			expectedMessage: "External API error: opensensemap api error: unexpected status 500",
		},
		{
			name:            "unexpected error",
			serviceErr:      errTest,
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Internal Server Error",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockSensorService := mock.NewMockSensorService(ctrl)
			s := NewHiveServer(mockSensorService, "v0.0.1")

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/temperature", nil)

			mockSensorService.EXPECT().
				CurrentTemperature(gomock.Any()).
				Return(tc.temperature, tc.serviceErr)

			s.GetTemperatureHandler(w, r)

			res := w.Result()
			defer func() {
				err := res.Body.Close()
				assert.Nil(t, err)
			}()

			assert.Equal(t, tc.expectedStatus, res.StatusCode)
			assert.Equal(t, "application/json; charset=utf-8", res.Header.Get("Content-Type"))

			if tc.serviceErr != nil {
				var resBody errorResponse
				err := json.NewDecoder(res.Body).Decode(&resBody)
				assert.Nil(t, err)
				assert.Equal(t, tc.expectedStatus, resBody.Code)
				assert.Equal(t, tc.expectedMessage, resBody.Message)
				return
			}

			var resBody struct {
				Data model.Temperature `json:"data"`
			}
			err := json.NewDecoder(res.Body).Decode(&resBody)
			assert.Nil(t, err)
			assert.Equal(t, *tc.temperature, resBody.Data)
		})
	}
}

func TestGetBoxHandler(t *testing.T) {
	distance := 24.61
	details := &model.BoxDetails{
		Station: &model.Station{
			ID:       "box-1",
			Name:     "Test Box",
			Exposure: "outdoor",
			Sensors:  []*model.Sensor{{ID: "s-1", Title: "Temperatur", Unit: "°C"}},
		},
		DistanceKm: &distance,
	}

	cases := []struct {
		name           string
		boxID          string
		details        *model.BoxDetails
		serviceErr     error
		isMockCalled   bool
		expectedStatus int
	}{
		{
			name:           "ok",
			boxID:          "box-1",
			details:        details,
			isMockCalled:   true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "not found",
			boxID:          "box-2",
			serviceErr:     fmt.Errorf("%w: %s", opensensemap.ErrNotFound, "box-2"),
			isMockCalled:   true,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "remote error",
			boxID:          "box-3",
			serviceErr:     fmt.Errorf("%w: failed to connect: timeout", opensensemap.ErrRemote),
			isMockCalled:   true,
			expectedStatus: http.StatusBadGateway,
		},
		{
			name:           "missing id",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockSensorService := mock.NewMockSensorService(ctrl)
			s := NewHiveServer(mockSensorService, "v0.0.1")

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/boxes/"+tc.boxID, nil)
			r = mux.SetURLVars(r, map[string]string{"id": tc.boxID})

			if tc.isMockCalled {
				mockSensorService.EXPECT().
					BoxDetails(gomock.Any(), tc.boxID).
					Return(tc.details, tc.serviceErr)
			}

			s.GetBoxHandler(w, r)

			res := w.Result()
			defer func() {
				err := res.Body.Close()
				assert.Nil(t, err)
			}()

			assert.Equal(t, tc.expectedStatus, res.StatusCode)

			if tc.expectedStatus != http.StatusOK {
				var resBody errorResponse
				err := json.NewDecoder(res.Body).Decode(&resBody)
				assert.Nil(t, err)
				assert.NotEmpty(t, resBody.Message)
				return
			}

			var resBody struct {
				Data map[string]interface{} `json:"data"`
			}
			err := json.NewDecoder(res.Body).Decode(&resBody)
			assert.Nil(t, err)
			assert.Equal(t, "box-1", resBody.Data["id"])
			assert.Equal(t, "Test Box", resBody.Data["name"])
			assert.Equal(t, distance, resBody.Data["distanceKm"])
		})
	}
}

func TestGetVersionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := NewHiveServer(mock.NewMockSensorService(ctrl), "v1.2.3")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/version", nil)

	s.GetVersionHandler(w, r)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var resBody struct {
		Data model.Version `json:"data"`
	}
	err := json.NewDecoder(res.Body).Decode(&resBody)
	assert.Nil(t, err)
	assert.Equal(t, "v1.2.3", resBody.Data.Version)
}
