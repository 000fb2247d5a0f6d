package config

import (
	"testing"
	"time"

	"github.com/tj/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"PORT", "ORIGIN", "LOG_LEVEL", "OPENSENSEMAP_URL", "OPENSENSEMAP_TIMEOUT",
		"SENSEBOX_IDS", "REFERENCE_LAT", "REFERENCE_LON",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	assert.Nil(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultOrigin, cfg.Origin)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultOpenSenseMapURL, cfg.OpenSenseMapURL)
	assert.Equal(t, DefaultTimeout, cfg.OpenSenseMapTimeout)
	assert.Equal(t, DefaultSenseBoxIDs, cfg.SenseBoxIDs)
	assert.Nil(t, cfg.Reference)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("OPENSENSEMAP_URL", "http://localhost:3000/")
	t.Setenv("OPENSENSEMAP_TIMEOUT", "2s")
	t.Setenv("SENSEBOX_IDS", " a, b ,,c ")
	t.Setenv("REFERENCE_LAT", "52.52")
	t.Setenv("REFERENCE_LON", "13.405")

	cfg, err := FromEnv()
	assert.Nil(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "http://localhost:3000", cfg.OpenSenseMapURL)
	assert.Equal(t, 2*time.Second, cfg.OpenSenseMapTimeout)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.SenseBoxIDs)
	assert.Equal(t, &Point{Lat: 52.52, Lon: 13.405}, cfg.Reference)
}

func TestFromEnvInvalid(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "port is not a number",
			env:  map[string]string{"PORT": "http"},
		},
		{
			name: "bad timeout",
			env:  map[string]string{"OPENSENSEMAP_TIMEOUT": "soon"},
		},
		{
			name: "negative timeout",
			env:  map[string]string{"OPENSENSEMAP_TIMEOUT": "-1s"},
		},
		{
			name: "latitude without longitude",
			env:  map[string]string{"REFERENCE_LAT": "52.5"},
		},
		{
			name: "latitude out of range",
			env:  map[string]string{"REFERENCE_LAT": "91", "REFERENCE_LON": "13"},
		},
		{
			name: "longitude not a number",
			env:  map[string]string{"REFERENCE_LAT": "52", "REFERENCE_LON": "east"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg, err := FromEnv()
			assert.NotNil(t, err)
			assert.Nil(t, cfg)
		})
	}
}
