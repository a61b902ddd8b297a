package config

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVaultServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Vault-Token") != "root" {
			w.WriteHeader(http.StatusForbidden)
			_, _ = io.WriteString(w, `{"errors":["permission denied"]}`)
			return
		}
		if r.URL.Path != "/v1/secret/data/teamgo" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"errors":[]}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"data":{"data":{"AUTH_TOKEN_SECRET":"from-vault","RETRIES":3,"DEBUG":true,"NESTED":{"a":"b"}},"metadata":{"version":1}}}`)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestNewVaultProvider(t *testing.T) {
	valid := VaultOptions{Address: "http://localhost:8200", Token: "root", Mount: "secret", Path: "teamgo"}

	tests := map[string]struct {
		opts      func(o VaultOptions) VaultOptions
		expectErr []string
	}{
		"valid": {
			opts: func(o VaultOptions) VaultOptions { return o },
		},
		"missing-address": {
			opts:      func(o VaultOptions) VaultOptions { o.Address = ""; return o },
			expectErr: []string{"vault address is required"},
		},
		"missing-token-and-mount": {
			opts:      func(o VaultOptions) VaultOptions { o.Token, o.Mount = "", ""; return o },
			expectErr: []string{"vault token is required", "vault mount is required"},
		},
		"missing-path": {
			opts:      func(o VaultOptions) VaultOptions { o.Path = ""; return o },
			expectErr: []string{"vault secret path is required"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewVaultProvider(tt.opts(valid))
			if len(tt.expectErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, msg := range tt.expectErr {
				assert.Contains(t, err.Error(), msg)
			}
		})
	}
}

func TestVaultProvider_Get(t *testing.T) {
	server := newVaultServer(t)

	tests := map[string]struct {
		token     string
		secret    string
		key       string
		expected  string
		expectErr bool
	}{
		"found": {
			token:    "root",
			secret:   "teamgo",
			key:      "AUTH_TOKEN_SECRET",
			expected: "from-vault",
		},
		"missing-key": {
			token:     "root",
			secret:    "teamgo",
			key:       "DB_PASS",
			expectErr: true,
		},
		"number": {
			token:    "root",
			secret:   "teamgo",
			key:      "RETRIES",
			expected: "3",
		},
		"bool": {
			token:    "root",
			secret:   "teamgo",
			key:      "DEBUG",
			expected: "true",
		},
		"nested": {
			token:     "root",
			secret:    "teamgo",
			key:       "NESTED",
			expectErr: true,
		},
		"missing-secret": {
			token:     "root",
			secret:    "other",
			key:       "AUTH_TOKEN_SECRET",
			expectErr: true,
		},
		"forbidden": {
			token:     "bad",
			secret:    "teamgo",
			key:       "AUTH_TOKEN_SECRET",
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			vp, err := NewVaultProvider(VaultOptions{
				Address:    server.URL,
				Token:      tt.token,
				Mount:      "secret",
				Path:       tt.secret,
				HTTPClient: server.Client(),
			})
			require.NoError(t, err)

			got, err := vp.Get(context.Background(), tt.key)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInitVaultProvider_Initialize(t *testing.T) {
	logger := log.New(io.Discard, "", 0)

	tests := map[string]struct {
		init      InitVaultProvider
		expectErr bool
	}{
		"disabled": {
			init: InitVaultProvider{Logger: logger, Server: unset, Token: unset, MountPath: "secret", SecretPath: "teamgo"},
		},
		"missing-token": {
			init:      InitVaultProvider{Logger: logger, Server: "http://localhost:8200", Token: unset, MountPath: "secret", SecretPath: "teamgo"},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := tt.init.Initialize(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
