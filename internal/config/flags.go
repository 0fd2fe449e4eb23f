// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// BindFlags registers every configuration flag on fs and returns the config
// the parsed values are written into. The returned value is only meaningful
// after fs has been parsed.
//
// Flags:
//
//	-a, --address          remote API base URL
//	    --listen           status API address in format [host]:[port]
//	-d, --db               SQLite database path
//	-c, --config           json file path with configs
//	    --token            bearer token to store at startup
//	    --log-file         rotating log file path
//	    --log-level        log level
//	    --request-timeout  remote request timeout (e.g. "30s")
//	    --page-size        page size for collection reads
//	    --max-pages        maximum pages followed per collection read
//	    --sync-interval    background sync period (e.g. "5m")
//	    --min-sync-interval cooldown between automatic syncs (e.g. "60s")
//	    --probe-interval   reachability probe period (e.g. "15s")
//	    --cycle-timeout    timeout of one sync cycle
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.Adapter.HTTPAddress, "address", "a", "", "Remote API base URL")
	fs.Var(&addressFlag{target: &cfg.Server.HTTPAddress}, "listen", "Status API address host:port")
	fs.StringVarP(&cfg.Storage.DB.DSN, "db", "d", "", "SQLite database path")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVar(&cfg.Auth.Token, "token", "", "Bearer token to store at startup")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Log file path (stdout when empty)")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 30s)")
	fs.IntVar(&cfg.Adapter.PageSize, "page-size", 0, "Page size for collection reads")
	fs.IntVar(&cfg.Adapter.MaxPages, "max-pages", 0, "Maximum pages per collection read (0 means no limit)")
	fs.DurationVar(&cfg.Workers.SyncInterval, "sync-interval", 0, "Background sync period (e.g., 5m)")
	fs.DurationVar(&cfg.Workers.MinSyncInterval, "min-sync-interval", 0, "Cooldown between automatic syncs (e.g., 60s)")
	fs.DurationVar(&cfg.Workers.ProbeInterval, "probe-interval", 0, "Reachability probe period (e.g., 15s)")
	fs.DurationVar(&cfg.Workers.CycleTimeout, "cycle-timeout", 0, "Timeout of a single sync cycle")

	return cfg
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
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

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}

// addressFlag validates a host:port flag through NetAddress and stores the
// canonical form into target.
type addressFlag struct {
	target *string
}

func (f *addressFlag) String() string {
	if f.target == nil {
		return ""
	}
	return *f.target
}

func (f *addressFlag) Set(s string) error {
	var addr NetAddress
	if err := addr.Set(s); err != nil {
		return err
	}
	*f.target = addr.String()
	return nil
}

func (f *addressFlag) Type() string {
	return "host:port"
}
