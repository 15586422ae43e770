package config

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	LogLevel        string
	LogFormat       string
	HorizonDays     int
	RefreshInterval Duration
	Feeds           FeedsConfig
	Metrics         MetricsConfig
}

// FeedsConfig carries per-source overrides, mainly for tests and local stubs.
type FeedsConfig struct {
	ESPNBaseURL     string
	SportsDBBaseURL string
	SportsDBAPIKey  string
	TextBaseURL     string
}

// MetricsConfig controls the telemetry exporters.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		LogLevel:        envOrDefault(envLogLevel, ""),
		LogFormat:       envOrDefault(envLogFormat, ""),
		HorizonDays:     intEnvOrDefault(envHorizonDays, defaultHorizonDays),
		RefreshInterval: durationEnvOrDefault(envRefreshInterval, defaultRefreshInterval),
		Feeds: FeedsConfig{
			ESPNBaseURL:     envOrDefault(envESPNBaseURL, ""),
			SportsDBBaseURL: envOrDefault(envSportsDBBaseURL, ""),
			SportsDBAPIKey:  envOrDefault(envSportsDBKey, ""),
			TextBaseURL:     envOrDefault(envTextBaseURL, ""),
		},
		Metrics: MetricsConfig{
			Enabled:      boolEnvOrDefault(envMetricsOn, false),
			Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
			ServiceName:  envOrDefault(envOtelService, ""),
			OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
			OtlpInsecure: boolEnvOrDefault(envOtelInsecure, false),
		},
	}
}
