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
//	-a server address in format [host]:[port]
//	-f secret store file path
//	-d vault database DSN
//	-bridge-url autofill runtime base URL
//	-bridge-timeout outbound bridge request timeout (e.g., "5s")
//	-c/-config json file path with configs
//	-sign-key bridge token signing key
//	-token-issuer bridge token issuer name
//	-token-duration bridge token duration (e.g., "1m")
//	-session-ttl master secret session window (e.g., "5m")
//	-request-timeout inbound request timeout (e.g., "30s")
//	-sync-interval settings resync interval (e.g., "1m")
func ParseFlags() *AgentConfig {
	var serverAddress NetAddress
	var secretStorePath string
	var databaseDSN string
	var bridgeURL string
	var bridgeTimeout time.Duration
	var jsonConfigPath string
	var signKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var sessionTTL time.Duration
	var requestTimeout time.Duration
	var syncInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&secretStorePath, "f", "", "Secret store file path")
	flag.StringVar(&databaseDSN, "d", "", "Vault database DSN")
	flag.StringVar(&bridgeURL, "bridge-url", "", "Autofill runtime base URL")
	flag.DurationVar(&bridgeTimeout, "bridge-timeout", 0, "Bridge request timeout (e.g., 5s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&signKey, "sign-key", "", "Bridge token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Bridge token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Bridge token duration (e.g., 1m)")
	flag.DurationVar(&sessionTTL, "session-ttl", 0, "Master secret session window (e.g., 5m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Inbound request timeout (e.g., 30s)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Settings resync interval (e.g., 1m)")

	flag.Parse()

	return &AgentConfig{
		App: App{
			BridgeSignKey: signKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			SessionTTL:    sessionTTL,
		},
		Storage: Storage{
			Secrets: Secrets{
				Path: secretStorePath,
			},
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Bridge: Bridge{
			BaseURL:        bridgeURL,
			RequestTimeout: bridgeTimeout,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
