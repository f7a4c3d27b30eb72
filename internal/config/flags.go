package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args with fs into a *StructuredConfig. Unset flags
// stay zero so they do not override other sources.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json or yaml file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-read-header-timeout header read timeout
//	-shutdown-timeout graceful shutdown timeout
//	-metrics-path metrics route
//	-metrics-disabled disable the metrics route
//	-env-files comma-separated dotenv files, highest precedence first
func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var configPath string
	var requestTimeout, readHeaderTimeout, shutdownTimeout time.Duration
	var metricsPath string
	var metricsDisabled bool
	var envFiles string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&configPath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or YAML config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&readHeaderTimeout, "read-header-timeout", 0, "Header read timeout (e.g., 5s)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.StringVar(&metricsPath, "metrics-path", "", "Metrics route")
	fs.BoolVar(&metricsDisabled, "metrics-disabled", false, "Disable the metrics route")
	fs.StringVar(&envFiles, "env-files", "", "Comma-separated dotenv files, highest precedence first")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Server: Server{
			HTTPAddress:       serverAddress.String(),
			RequestTimeout:    requestTimeout,
			ReadHeaderTimeout: readHeaderTimeout,
			ShutdownTimeout:   shutdownTimeout,
		},
		Metrics: Metrics{
			Disabled: metricsDisabled,
			Path:     metricsPath,
		},
		Env:      EnvFiles{Files: splitList(envFiles)},
		FilePath: configPath,
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so the
// address does not override other sources.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. An empty host listens on all interfaces. It validates the
// port range, checks IP correctness unless host is "localhost", and returns
// an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number is a positive integer up to 65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
