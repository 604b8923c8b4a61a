package config

// this holds the resolved configuration values from CLI
var (
	LogLevel        string // sets the log level (zap log level values)
	LogFormat       string // text vs json
	LogConfig       string // path to log config file
	EnableTelemetry bool   // enable telemetry (stdout exporters)
)

// Config holds the configuration values which are used by the report command
type Config struct {
	Output        string // output format (text, json, yaml)
	CollectErrors bool   // if true, all invalid lines are reported
}
