package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── NetAddress ────────────────────────────────────────────────────────────────

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "localhost", in: "localhost:8080", want: "localhost:8080"},
		{name: "ipv4", in: "127.0.0.1:9000", want: "127.0.0.1:9000"},
		{name: "missing port", in: "localhost", wantErr: true},
		{name: "non numeric port", in: "localhost:http", wantErr: true},
		{name: "zero port", in: "localhost:0", wantErr: true},
		{name: "port too large", in: "localhost:70000", wantErr: true},
		{name: "bad host", in: "example:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestNetAddress_StringEmpty(t *testing.T) {
	var a NetAddress
	assert.Equal(t, "", a.String())
	assert.Equal(t, "host:port", a.Type())
}

// ── BindFlags ─────────────────────────────────────────────────────────────────

func TestBindFlags_ParsesValues(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg := BindFlags(fs)

	err := fs.Parse([]string{
		"-a", "http://api.local",
		"--listen", "127.0.0.1:8085",
		"-d", "local.db",
		"-c", "cfg.json",
		"--token", "abc",
		"--request-timeout", "12s",
		"--page-size", "25",
		"--min-sync-interval", "30s",
		"--log-level", "warn",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://api.local", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "127.0.0.1:8085", cfg.Server.HTTPAddress)
	assert.Equal(t, "local.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Equal(t, "abc", cfg.Auth.Token)
	assert.Equal(t, 12*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 25, cfg.Adapter.PageSize)
	assert.Equal(t, 30*time.Second, cfg.Workers.MinSyncInterval)
	assert.Equal(t, "warn", cfg.App.LogLevel)
}

func TestBindFlags_InvalidListenAddress(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)

	err := fs.Parse([]string{"--listen", "nowhere"})
	assert.Error(t, err)
}

func TestBindFlags_Unset(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg := BindFlags(fs)
	require.NoError(t, fs.Parse(nil))
	assert.Equal(t, &StructuredConfig{}, cfg)
}
