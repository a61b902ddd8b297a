package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamgo/teamgo/internal/domain"
)

func writeOptions(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "identity.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadIdentityOptions(t *testing.T) {
	tests := map[string]struct {
		content   string
		expected  func(o *domain.IdentityOptions)
		expectErr bool
	}{
		"overrides": {
			content: `
password:
  required_length: 12
  require_uppercase: true
lockout:
  max_failed_access_attempts: 3
  default_lockout_time_span: 15m
`,
			expected: func(o *domain.IdentityOptions) {
				o.Password.RequiredLength = 12
				o.Password.RequireUppercase = true
				o.Lockout.MaxFailedAccessAttempts = 3
				o.Lockout.DefaultLockoutTimeSpan = 15 * time.Minute
			},
		},
		"empty-keeps-defaults": {
			content:  "",
			expected: func(*domain.IdentityOptions) {},
		},
		"invalid-yaml": {
			content:   "password: [",
			expectErr: true,
		},
		"invalid-policy": {
			content:   "lockout:\n  max_failed_access_attempts: 0\n",
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := LoadIdentityOptions(writeOptions(t, tt.content))
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			expected := domain.DefaultIdentityOptions()
			tt.expected(&expected)
			assert.Equal(t, expected, got)
		})
	}
}

func TestLoadIdentityOptions_MissingFile(t *testing.T) {
	_, err := LoadIdentityOptions(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestInitIdentityOptions_Initialize(t *testing.T) {
	tests := map[string]struct {
		path     string
		expected int
	}{
		"defaults": {
			path:     unset,
			expected: domain.DefaultIdentityOptions().Password.RequiredLength,
		},
		"from-file": {
			path:     writeOptions(t, "password:\n  required_length: 10\n"),
			expected: 10,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			depend.ClearContainer()
			t.Cleanup(depend.ClearContainer)

			_, err := InitIdentityOptions{Path: tt.path}.Initialize(context.Background())
			require.NoError(t, err)

			options, err := depend.Resolve[domain.IdentityOptions]()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, options.Password.RequiredLength)
		})
	}
}
