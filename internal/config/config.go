// Package config loads service settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults.
const (
	DefaultPort            = "8080"
	DefaultOrigin          = "*"
	DefaultLogLevel        = "info"
	DefaultOpenSenseMapURL = "https://api.opensensemap.org"
	DefaultTimeout         = 10 * time.Second
)

// DefaultSenseBoxIDs are the boxes averaged when SENSEBOX_IDS is not set.
var DefaultSenseBoxIDs = []string{
	"5eba5fbad46fb8001b799786",
	"5c21ff8f919bf8001adf2488",
	"5ade1acf223bd80019a1011c",
}

// Point is a geographic coordinate in degrees.
type Point struct {
	Lat float64
	Lon float64
}

// Config contains service settings.
type Config struct {
	Port                string
	Origin              string
	LogLevel            string
	OpenSenseMapURL     string
	OpenSenseMapTimeout time.Duration
	SenseBoxIDs         []string

	// Reference is the point box distances are measured from; nil disables distances.
	Reference *Point
}

// Load reads .env (if present) and then the process environment.
// Variables already set in the environment win over the file.
func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	return FromEnv()
}

// FromEnv builds Config from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:                getEnv("PORT", DefaultPort),
		Origin:              getEnv("ORIGIN", DefaultOrigin),
		LogLevel:            strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		OpenSenseMapURL:     strings.TrimRight(getEnv("OPENSENSEMAP_URL", DefaultOpenSenseMapURL), "/"),
		OpenSenseMapTimeout: DefaultTimeout,
		SenseBoxIDs:         DefaultSenseBoxIDs,
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("invalid PORT %q: %w", cfg.Port, err)
	}

	if s := getEnv("OPENSENSEMAP_TIMEOUT", ""); s != "" {
		timeout, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("invalid OPENSENSEMAP_TIMEOUT %q: %w", s, err)
		}
		if timeout <= 0 {
			return nil, fmt.Errorf("OPENSENSEMAP_TIMEOUT should be positive, got %s", timeout)
		}
		cfg.OpenSenseMapTimeout = timeout
	}

	if s := getEnv("SENSEBOX_IDS", ""); s != "" {
		cfg.SenseBoxIDs = parseIDs(s)
	}

	reference, err := parseReference(getEnv("REFERENCE_LAT", ""), getEnv("REFERENCE_LON", ""))
	if err != nil {
		return nil, err
	}
	cfg.Reference = reference

	return cfg, nil
}

func getEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

// parseIDs splits a comma separated list, dropping empty items.
func parseIDs(s string) []string {
	parts := strings.Split(s, ",")

	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			ids = append(ids, p)
		}
	}

	return ids
}

func parseReference(latStr, lonStr string) (*Point, error) {
	if latStr == "" && lonStr == "" {
		return nil, nil
	}
	if latStr == "" || lonStr == "" {
		return nil, errors.New("REFERENCE_LAT and REFERENCE_LON should be set together")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil || lat < -90 || lat > 90 {
		return nil, fmt.Errorf("invalid REFERENCE_LAT %q", latStr)
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil || lon < -180 || lon > 180 {
		return nil, fmt.Errorf("invalid REFERENCE_LON %q", lonStr)
	}

	return &Point{Lat: lat, Lon: lon}, nil
}
