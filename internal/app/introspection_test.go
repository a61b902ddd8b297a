package app

import (
	"bytes"
	"context"
	"log"
	"strings"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamgo/teamgo/internal/adapters/inbound/http"
)

func TestMermaidGraphIntrospector_Introspect(t *testing.T) {
	depend.ClearContainer()
	t.Cleanup(depend.ClearContainer)

	report := introspection.Report{
		Configs: []introspection.ConfigAccess{
			{Key: "HTTP_PORT", UsedDefault: true},
		},
	}

	err := MermaidGraphIntrospector{}.Introspect(context.Background(), report)
	require.NoError(t, err)

	graph, err := depend.ResolveNamed[string](http.MermaidGraphName)
	require.NoError(t, err)
	assert.NotEmpty(t, graph)
}

func TestReportLoggerIntrospector_Introspect(t *testing.T) {
	tests := map[string]struct {
		registerLogger bool
		configs        []introspection.ConfigAccess
		expectedLines  []string
	}{
		"sorted-with-summary": {
			registerLogger: true,
			configs: []introspection.ConfigAccess{
				{Key: "STORE_DRIVER"},
				{Key: "HTTP_PORT", UsedDefault: true},
			},
			expectedLines: []string{
				"config: HTTP_PORT (default)",
				"config: STORE_DRIVER (provided)",
				"config: 2 keys read, 1 on defaults",
			},
		},
		"empty-report": {
			registerLogger: true,
			expectedLines:  []string{"config: 0 keys read, 0 on defaults"},
		},
		"no-registered-logger": {
			configs: []introspection.ConfigAccess{{Key: "HTTP_PORT"}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			depend.ClearContainer()
			t.Cleanup(depend.ClearContainer)

			var buf bytes.Buffer
			if tt.registerLogger {
				depend.Register(log.New(&buf, "", 0))
			}

			err := ReportLoggerIntrospector{}.Introspect(context.Background(), introspection.Report{Configs: tt.configs})
			require.NoError(t, err)
			if len(tt.expectedLines) > 0 {
				assert.Equal(t, tt.expectedLines, strings.Split(strings.TrimSpace(buf.String()), "\n"))
			}
		})
	}
}
