// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses args (without the program name) into a [StructuredConfig].
// Unset flags stay zero so they do not override other sources when merged.
// Flags that were set, even to a zero value, win over earlier sources.
//
// Flags:
//
//	-a HTTP server address in format [host]:[port]
//	-grpc-address gRPC health server address in format [host]:[port]
//	-version-tag application version
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
//	-rate-limit API requests per minute and client IP
//	-log-level log level
//	-log-dir directory for app.log
//	-base-url probe target URL
//	-probe-timeout probe request timeout
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	cfg, _, err := parseFlags(args)
	return cfg, err
}

// parseFlags is ParseFlags that also returns the fields set on the command
// line.
func parseFlags(args []string) (*StructuredConfig, []string, error) {
	var httpAddress, grpcAddress NetAddress
	var version string
	var requestTimeout, shutdownTimeout, probeTimeout time.Duration
	var rateLimit int
	var logLevel, logDir string
	var baseURL string
	var jsonConfigPath string

	fs := flag.NewFlagSet("unified-ai-lab", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&httpAddress, "a", "Net address host:port")
	fs.Var(&grpcAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&version, "version-tag", "", "Application version")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.IntVar(&rateLimit, "rate-limit", 0, "API requests per minute and client IP")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logDir, "log-dir", "", "Directory for app.log")
	fs.StringVar(&baseURL, "base-url", "", "Probe target base URL")
	fs.DurationVar(&probeTimeout, "probe-timeout", 0, "Probe request timeout")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	var explicit []string
	fs.Visit(func(f *flag.Flag) {
		if field, ok := flagFields[f.Name]; ok {
			explicit = append(explicit, field)
		}
	})

	return &StructuredConfig{
		App: App{
			Version: version,
		},
		Server: Server{
			HTTPAddress:     httpAddress.String(),
			GRPCAddress:     grpcAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
			RateLimit:       rateLimit,
		},
		Log: Log{
			Level: logLevel,
			Dir:   logDir,
		},
		Probe: Probe{
			BaseURL:        baseURL,
			RequestTimeout: probeTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, explicit, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host binds all interfaces; any other host must be "localhost" or
// an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
