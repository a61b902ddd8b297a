package app

import (
	"context"
	"log"
	"sort"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
	"github.com/teamgo/teamgo/internal/adapters/inbound/http"
)

// MermaidGraphIntrospector publishes the dependency graph served by /introspect.
type MermaidGraphIntrospector struct{}

// Introspect renders the report as Mermaid and registers it under http.MermaidGraphName.
func (MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	depend.RegisterNamed(mermaid.GenerateIntrospectionGraph(r), http.MermaidGraphName)
	return nil
}

// ReportLoggerIntrospector logs every configuration key the application read,
// sorted by key, and whether its default value was used.
type ReportLoggerIntrospector struct{}

// Introspect writes the configuration report to the registered logger.
func (ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	logger, err := depend.Resolve[*log.Logger]()
	if err != nil {
		logger = log.Default()
	}

	configs := append([]introspection.ConfigAccess(nil), r.Configs...)
	sort.Slice(configs, func(i, j int) bool { return configs[i].Key < configs[j].Key })

	defaults := 0
	for _, c := range configs {
		source := "provided"
		if c.UsedDefault {
			source = "default"
			defaults++
		}
		logger.Printf("config: %s (%s)", c.Key, source)
	}
	logger.Printf("config: %d keys read, %d on defaults", len(configs), defaults)
	return nil
}
