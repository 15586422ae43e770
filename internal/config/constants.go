package config

import "time"

const (
	envPort            = "PORT"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"
	envHorizonDays     = "HORIZON_DAYS"
	envRefreshInterval = "REFRESH_INTERVAL"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envESPNBaseURL     = "ESPN_BASE_URL"
	envSportsDBBaseURL = "SPORTSDB_BASE_URL"
	envSportsDBKey     = "SPORTSDB_API_KEY"
	envTextBaseURL     = "TEXT_FEED_BASE_URL"

	defaultPort        = "4000"
	defaultMetricsPort = "9090"

	// How many days ahead each aggregation run looks, today inclusive.
	defaultHorizonDays = 30

	// Baseline games shown per category and the "show more" step.
	DefaultDisplayLimit = 5
	DisplayLimitStep    = 5

	// Zero disables background refresh; the scoreboard is refreshed on
	// demand and once at boot.
	defaultRefreshInterval = 0 * Duration(time.Second)
)
