package log

import (
	"context"
	"io"
	"log"
	"os"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_Initialize(t *testing.T) {
	tests := map[string]struct {
		output    string
		expected  io.Writer
		expectErr bool
	}{
		"default": {
			expected: os.Stdout,
		},
		"stderr": {
			output:   "stderr",
			expected: os.Stderr,
		},
		"discard": {
			output:   "discard",
			expected: io.Discard,
		},
		"unknown": {
			output:    "syslog",
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			depend.ClearContainer()
			t.Cleanup(depend.ClearContainer)

			_, err := InitLogger{Output: tt.output}.Initialize(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			logger, err := depend.Resolve[*log.Logger]()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, logger.Writer())
			assert.Equal(t, log.LstdFlags|log.LUTC|log.Lmsgprefix, logger.Flags())
		})
	}
}
