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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a admin API address in format [host]:[port]
//	-d local database DSN (SQLite path)
//	-r remote API base URL
//	-c/-config json file path with configs
//	-tenant tenant identifier
//	-user user identifier used for lock arbitration
//	-user-label human-readable user label
//	-request-timeout outbound request timeout (e.g., "15s")
//	-probe-interval connectivity probe period (e.g., "30s")
//	-lock-ttl offline lock time-to-live (e.g., "72h", 0 disables)
func ParseFlags() *Config {
	var adminAddress NetAddress
	var databaseDSN string
	var remoteBaseURL string
	var jsonConfigPath string
	var tenantID string
	var userID string
	var userLabel string
	var requestTimeout time.Duration
	var probeInterval time.Duration
	var lockTTL time.Duration

	flag.Var(&adminAddress, "a", "Admin API net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Local database DSN")
	flag.StringVar(&remoteBaseURL, "r", "", "Remote API base URL")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tenantID, "tenant", "", "Tenant identifier")
	flag.StringVar(&userID, "user", "", "User identifier")
	flag.StringVar(&userLabel, "user-label", "", "Human-readable user label")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	flag.DurationVar(&probeInterval, "probe-interval", 0, "Connectivity probe period (e.g., 30s)")
	flag.DurationVar(&lockTTL, "lock-ttl", 0, "Offline lock TTL (e.g., 72h)")

	flag.Parse()

	return &Config{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Remote: Remote{
			BaseURL:        remoteBaseURL,
			RequestTimeout: requestTimeout,
		},
		Monitor: Monitor{
			ProbeInterval: probeInterval,
		},
		Lock: Lock{
			TTL: lockTTL,
		},
		Server: Server{
			HTTPAddress: adminAddress.String(),
		},
		Identity: Identity{
			TenantID:  tenantID,
			UserID:    userID,
			UserLabel: userLabel,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress. If neither
// Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format is invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
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
