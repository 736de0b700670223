// Package config provides functionality for managing configuration
// options for the application using command-line flags and environment
// variables.
package config

import (
	"flag"
	"os"
	"strconv"
	"time"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string

	// ResultHostname is the base URL embedded into shareable links.
	ResultHostname string

	// FilePath is the data directory for the JSON file store.
	FilePath string

	// DatabaseDSN holds the Postgres connection string.
	DatabaseDSN string

	// CleanupInterval is the period between garbage collection sweeps.
	CleanupInterval time.Duration

	// TrustedSubnet is the CIDR allowed to read internal stats.
	TrustedSubnet string

	// GitHubClientID and GitHubClientSecret are the OAuth app credentials.
	GitHubClientID     string
	GitHubClientSecret string

	// JWTSecret signs session tokens.
	JWTSecret string

	// EnablePprof indicates whether to enable pprof for profiling.
	EnablePprof bool

	// EnableHTTPS indicates whether to enable https.
	EnableHTTPS bool
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Port, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.ResultHostname, "b", "http://localhost:8080", "base url for shareable links")
	flag.StringVar(&options.FilePath, "f", "", "data directory for the file store")
	flag.StringVar(&options.DatabaseDSN, "d", "", "db address")
	flag.DurationVar(&options.CleanupInterval, "i", time.Hour, "garbage collection sweep interval")
	flag.StringVar(&options.TrustedSubnet, "t", "", "trusted subnet for internal stats (CIDR)")
	flag.BoolVar(&options.EnablePprof, "p", false, "enable pprof")
	flag.BoolVar(&options.EnableHTTPS, "s", false, "enable https")
}

// Parse parses the command-line flags and environment variables to set
// configuration values. It returns a pointer to the Options struct
// containing the parsed configuration values.
func Parse() *Options {
	flag.Parse()

	// Override flags with environment variables if set
	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Port = serverAddress
	}

	if baseURL := os.Getenv("BASE_URL"); baseURL != "" {
		options.ResultHostname = baseURL
	}

	if storagePath := os.Getenv("FILE_STORAGE_PATH"); storagePath != "" {
		options.FilePath = storagePath
	}

	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		options.DatabaseDSN = dsn
	}

	if interval := os.Getenv("CLEANUP_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil {
			options.CleanupInterval = d
		}
	}

	if subnet := os.Getenv("TRUSTED_SUBNET"); subnet != "" {
		options.TrustedSubnet = subnet
	}

	options.GitHubClientID = os.Getenv("GITHUB_CLIENT_ID")
	options.GitHubClientSecret = os.Getenv("GITHUB_CLIENT_SECRET")

	options.JWTSecret = os.Getenv("JWT_SECRET")
	if options.JWTSecret == "" {
		options.JWTSecret = "supersecretkey"
	}

	if enableHTTPS := os.Getenv("ENABLE_HTTPS"); enableHTTPS != "" {
		httpMode, err := strconv.ParseBool(enableHTTPS)
		if err != nil {
			options.EnableHTTPS = false
		}

		options.EnableHTTPS = httpMode
	}

	return options
}
