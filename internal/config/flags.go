package config

import (
	"errors"
	"flag"
	"fmt"
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

// parseFlags parses configuration flags from args using a dedicated
// [flag.FlagSet], so it can be called more than once per process.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-p listen port
//	-d database DSN
//	-c/-config json file path with configs
//	-jwt-secret token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "168h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-frontend-url allowed CORS origin
//	-log-level log level
//	-cart-ttl stale cart age, 0 disables the sweeper
//	-cart-sweep-interval stale cart sweep period
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var port string
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var frontendURL string
	var logLevel string
	var cartTTL time.Duration
	var cartSweepInterval time.Duration

	fs := flag.NewFlagSet("go-food-order", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&port, "p", "", "Listen port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "jwt-secret", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 168h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&frontendURL, "frontend-url", "", "Allowed CORS origin")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&cartTTL, "cart-ttl", 0, "Remove carts not updated for this long, 0 disables")
	fs.DurationVar(&cartSweepInterval, "cart-sweep-interval", 0, "Stale cart sweep period")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			LogLevel:      logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			Host:           serverAddress.Host,
			FrontendURL:    frontendURL,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			CartTTL:           cartTTL,
			CartSweepInterval: cartSweepInterval,
		},
		JSONFilePath: jsonConfigPath,
	}

	if serverAddress.Port != 0 {
		cfg.Server.Port = strconv.Itoa(serverAddress.Port)
	}
	if port != "" {
		cfg.Server.Port = port
	}

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, rawPort, found := strings.Cut(s, ":")
	if !found {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
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
