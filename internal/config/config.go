// Package config holds the process configuration. It is built once at
// startup from flags and environment and is never mutated afterwards.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
)

const (
	// DefaultHost binds the listener to all interfaces.
	DefaultHost = "0.0.0.0"

	// DefaultPort is the default HTTP server port.
	DefaultPort = 8000

	// DefaultLogLevel is the default log verbosity.
	DefaultLogLevel = "info"

	// ServiceName is reported by the status endpoint.
	ServiceName = "daily-sales-api"

	// Title is the human-readable API name.
	Title = "Daily Sales & Cash Management API"

	// Version is the API version.
	Version = "0.1.0"

	maxPort = 65535
)

// ErrInvalidPort is returned when a port value is not an integer in 1..65535.
var ErrInvalidPort = errors.New("invalid port")

// Config is the immutable runtime configuration passed to the server.
type Config struct {
	Host        string
	Port        int
	LogLevel    slog.Level
	ServiceName string
	Title       string
	Version     string
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Host:        DefaultHost,
		Port:        DefaultPort,
		LogLevel:    slog.LevelInfo,
		ServiceName: ServiceName,
		Title:       Title,
		Version:     Version,
	}
}

// WithPort returns a copy of c listening on port.
func (c Config) WithPort(port int) Config {
	c.Port = port
	return c
}

// WithLogLevel returns a copy of c with the given log level.
func (c Config) WithLogLevel(level slog.Level) Config {
	c.LogLevel = level
	return c
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ParsePort parses a decimal port number in the range 1..65535.
func ParsePort(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	port, err := strconv.Atoi(trimmed)
	if err != nil || port < 1 || port > maxPort {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPort, raw)
	}
	return port, nil
}

// PortOrDefault returns the parsed port, or DefaultPort when raw is empty
// or invalid.
func PortOrDefault(raw string) int {
	port, err := ParsePort(raw)
	if err != nil {
		return DefaultPort
	}
	return port
}
