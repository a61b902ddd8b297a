package postgres

import (
	"context"
	"database/sql/driver"
	"log"
	"strings"

	"github.com/DataDog/go-sqllexer"
	"github.com/XSAM/otelsql"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

// queryAttributes tags query and exec spans with a summary and the touched tables.
func queryAttributes(logger *log.Logger) func(context.Context, otelsql.Method, string, []driver.NamedValue) []attribute.KeyValue {
	return func(_ context.Context, method otelsql.Method, query string, _ []driver.NamedValue) []attribute.KeyValue {
		if method != otelsql.MethodConnQuery && method != otelsql.MethodConnExec {
			return nil
		}
		commands, tables, ok := summarizeQuery(query)
		if !ok {
			logger.Printf("InitDB: could not summarize query: %.60q", query)
			return nil
		}

		var attrs []attribute.KeyValue
		if len(commands) > 0 {
			attrs = append(attrs, semconv.DBQuerySummary(strings.TrimSpace(strings.Join(commands, ",")+" "+strings.Join(tables, ","))))
		}
		if len(tables) > 0 {
			attrs = append(attrs, semconv.DBCollectionName(strings.Join(tables, ",")))
		}
		return attrs
	}
}

// summarizeQuery returns the SQL commands and tables a statement uses.
func summarizeQuery(query string) (commands, tables []string, ok bool) {
	normalizer := sqllexer.NewNormalizer(
		sqllexer.WithCollectTables(true),
		sqllexer.WithCollectCommands(true),
		sqllexer.WithCollectComments(false),
	)
	_, meta, err := normalizer.Normalize(query)
	if err != nil {
		return nil, nil, false
	}
	return meta.Commands, meta.Tables, true
}
