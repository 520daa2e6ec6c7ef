package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSONConfig(t, `{
		"app": {
			"bridge_sign_key": "bridge_secret",
			"token_issuer": "test_issuer",
			"token_duration": "1m",
			"session_ttl": "5m"
		},
		"storage": {
			"secrets": {"path": "/var/lib/autofill/secrets.json"},
			"db": {"dsn": "/var/lib/autofill/vault.db"}
		},
		"server": {"http_address": "127.0.0.1:8080", "request_timeout": "30s"},
		"bridge": {"base_url": "http://127.0.0.1:9200", "request_timeout": "5s"},
		"workers": {"sync_interval": "1m"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "bridge_secret", cfg.App.BridgeSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, 5*time.Minute, cfg.App.SessionTTL)
	assert.Equal(t, "/var/lib/autofill/secrets.json", cfg.Storage.Secrets.Path)
	assert.Equal(t, "/var/lib/autofill/vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://127.0.0.1:9200", cfg.Bridge.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Bridge.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/no/such/file.json")
	assert.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeTempJSONConfig(t, `{not json`)

	_, err := parseJSON(path)
	assert.ErrorContains(t, err, "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "duration string", input: `"1h"`, want: time.Hour},
		{name: "seconds string", input: `"30s"`, want: 30 * time.Second},
		{name: "raw nanoseconds", input: `60000000000`, want: time.Minute},
		{name: "garbage string", input: `"never"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
