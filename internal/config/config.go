package config

// Core configuration constants that define the boundaries and defaults
// for the evaluator, the CLI and the WebSocket server.
const (
	// Default values for the evaluator and output
	DefaultLogLevel        = "info" // Quiet operation
	DefaultWidth           = 64     // Evaluate with int64 registers
	DefaultOutput          = OutputText
	DefaultMaxSubsetValues = 16 // 2^16 subsets per request

	// Default values for the WebSocket server
	DefaultServerAddress   = "127.0.0.1:8080"
	DefaultServerPath      = "/ws"
	DefaultReadBufferSize  = 1024
	DefaultWriteBufferSize = 1024

	// Default config file looked up when no path is given
	DefaultConfigFile = "bitwise.yaml"

	// Output formats
	OutputText = "text"
	OutputJSON = "json"

	// Limits
	MaxSubsetValues = 20 // Hard cap, see bitint.MaxPowerSetInput
)

// Config holds all runtime configuration options. It is loaded from a YAML
// file (or defaults), then adjusted by environment variables and finally by
// command line flags.
type Config struct {
	LogLevel        string       `yaml:"log_level"`         // Logging level (e.g., "debug", "info", "warn", "error").
	Width           int          `yaml:"width"`             // Register width in bits used by the evaluator (32 or 64).
	Output          string       `yaml:"output"`            // Result format printed by the CLI ("text" or "json").
	MaxSubsetValues int          `yaml:"max_subset_values"` // Largest input accepted by the subsets operation.
	Server          ServerConfig `yaml:"server"`            // WebSocket server settings.
}

// ServerConfig holds settings for the WebSocket evaluation server.
type ServerConfig struct {
	Address         string `yaml:"address"`           // Listen address (e.g., "127.0.0.1:8080").
	Path            string `yaml:"path"`              // HTTP path that upgrades to WebSocket.
	ReadBufferSize  int    `yaml:"read_buffer_size"`  // Upgrader read buffer in bytes.
	WriteBufferSize int    `yaml:"write_buffer_size"` // Upgrader write buffer in bytes.
}

// NewConfig creates a new Config instance with default values.
func NewConfig() *Config {
	return &Config{
		LogLevel:        DefaultLogLevel,
		Width:           DefaultWidth,
		Output:          DefaultOutput,
		MaxSubsetValues: DefaultMaxSubsetValues,
		Server: ServerConfig{
			Address:         DefaultServerAddress,
			Path:            DefaultServerPath,
			ReadBufferSize:  DefaultReadBufferSize,
			WriteBufferSize: DefaultWriteBufferSize,
		},
	}
}
