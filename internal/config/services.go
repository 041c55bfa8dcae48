package config

import (
	"time"
)

// ServicesConfig holds the base URLs of the external services the create
// flow verifies against. The trip-completion gate ships disabled; enable it
// with SERVICES_TRIP_CHECK_ENABLED once the trip service exposes status.
type ServicesConfig struct {
	RiderServiceURL  string        `yaml:"rider_service_url"`
	TripServiceURL   string        `yaml:"trip_service_url"`
	RequestTimeout   time.Duration `yaml:"request_timeout"`
	TripCheckEnabled bool          `yaml:"trip_check_enabled"`
}

func loadServicesConfig() *ServicesConfig {
	return &ServicesConfig{
		RiderServiceURL:  getEnv("RIDER_SERVICE_URL", "http://rider-service:8000/v1/riders"),
		TripServiceURL:   getEnv("TRIP_SERVICE_URL", "http://trip-service:8002/v1/trips"),
		RequestTimeout:   getEnvAsDuration("SERVICES_REQUEST_TIMEOUT", 10*time.Second),
		TripCheckEnabled: getEnvAsBool("SERVICES_TRIP_CHECK_ENABLED", false),
	}
}
