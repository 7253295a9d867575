package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Remote backend modes
const (
	RemoteModeHTTP   = "http"
	RemoteModeOpenAI = "openai"
	RemoteModeNone   = "none"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort  string
	CORSOrigins []string

	// Remote backend configuration
	RemoteMode    string
	BackendURL    string
	RemoteTimeout time.Duration

	// Fallback latency simulation
	SimulateLatency bool
	LatencyMin      time.Duration
	LatencyMax      time.Duration

	// OpenAI configuration
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	// Logging configuration
	LogLevel  string
	LogFormat string

	// Args holds the positional arguments left after flag parsing
	Args []string
}

// LoadConfig loads configuration from .env, environment variables and command-line flags
func LoadConfig() (*Config, error) {
	// A missing .env file is fine; existing environment variables win
	_ = godotenv.Load()
	return Load(os.Args[0], os.Args[1:])
}

// Load parses args on top of the environment.
// Flags take precedence over environment variables
func Load(name string, args []string) (*Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	serverPort := fs.String("server-port", getEnv("SERVER_PORT", "8080"), "Server port")
	corsOrigins := fs.String("cors-origins", getEnv("CORS_ALLOWED_ORIGINS", "*"), "Comma separated list of allowed CORS origins")
	remoteMode := fs.String("remote-mode", getEnv("REMOTE_MODE", RemoteModeHTTP), "Remote backend: http, openai or none")
	backendURL := fs.String("backend-url", getEnv("BACKEND_URL", "http://localhost:8000"), "Base URL of the remote query backend")
	remoteTimeout := fs.Duration("remote-timeout", getEnvAsDuration("REMOTE_TIMEOUT", 10*time.Second), "Timeout for a single remote attempt")
	simulateLatency := fs.Bool("simulate-latency", getEnvAsBool("SIMULATE_LATENCY", true), "Delay fallback answers to mimic backend latency")
	latencyMin := fs.Duration("latency-min", getEnvAsDuration("LATENCY_MIN", 1500*time.Millisecond), "Minimum simulated fallback latency")
	latencyMax := fs.Duration("latency-max", getEnvAsDuration("LATENCY_MAX", 2500*time.Millisecond), "Maximum simulated fallback latency")
	openAIKey := fs.String("openai-key", getEnv("OPENAI_API_KEY", ""), "OpenAI API key")
	openAIModel := fs.String("openai-model", getEnv("OPENAI_MODEL", "gpt-4.1-mini"), "OpenAI model for chat completions")
	openAIBaseURL := fs.String("openai-base-url", getEnv("OPENAI_BASE_URL", ""), "OpenAI API base URL")
	logLevel := fs.String("log-level", getEnv("LOG_LEVEL", "info"), "Log level: debug, info, warn, error")
	logFormat := fs.String("log-format", getEnv("LOG_FORMAT", "json"), "Log format: json or console")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{
		ServerPort:      *serverPort,
		CORSOrigins:     splitList(*corsOrigins),
		RemoteMode:      strings.ToLower(strings.TrimSpace(*remoteMode)),
		BackendURL:      *backendURL,
		RemoteTimeout:   *remoteTimeout,
		SimulateLatency: *simulateLatency,
		LatencyMin:      *latencyMin,
		LatencyMax:      *latencyMax,
		OpenAIAPIKey:    *openAIKey,
		OpenAIModel:     *openAIModel,
		OpenAIBaseURL:   *openAIBaseURL,
		LogLevel:        *logLevel,
		LogFormat:       *logFormat,
		Args:            fs.Args(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field combinations that flags alone cannot express
func (c *Config) Validate() error {
	switch c.RemoteMode {
	case RemoteModeHTTP:
		if c.BackendURL == "" {
			return errors.New("BACKEND_URL is required in http remote mode")
		}
	case RemoteModeOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required in openai remote mode (set via environment variable or -openai-key flag)")
		}
	case RemoteModeNone:
	default:
		return fmt.Errorf("unknown remote mode %q", c.RemoteMode)
	}

	if c.RemoteTimeout <= 0 {
		return fmt.Errorf("remote timeout must be positive, got %v", c.RemoteTimeout)
	}
	if c.LatencyMin < 0 || c.LatencyMin > c.LatencyMax {
		return fmt.Errorf("invalid latency range [%v, %v]", c.LatencyMin, c.LatencyMax)
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool gets an environment variable as a bool or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration gets an environment variable as a duration or returns a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
