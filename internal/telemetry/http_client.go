package telemetry

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// InitHttpClient registers a traced *http.Client that retries transient failures.
type InitHttpClient struct {
	Logger       *log.Logger   `resolve:""`
	RetryMax     int           `config:"HTTP_CLIENT_RETRY_MAX" default:"3"`
	RetryWaitMax time.Duration `config:"HTTP_CLIENT_RETRY_WAIT_MAX" default:"5s"`
}

// Initialize registers the *http.Client in the dependency container.
func (i InitHttpClient) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(i.newClient())
	return ctx, nil
}

func (i InitHttpClient) newClient() *http.Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = i.RetryMax
	rc.RetryWaitMax = i.RetryWaitMax
	rc.CheckRetry = skipServerErrors(retryablehttp.ErrorPropagatedRetryPolicy)
	rc.Logger = i.Logger

	client := rc.StandardClient()
	client.Transport = otelhttp.NewTransport(
		client.Transport,
		otelhttp.WithSpanNameFormatter(SpanNameFormatter),
	)
	return client
}

// skipServerErrors stops retrying on canceled contexts and on 500 responses,
// deferring to policy otherwise.
func skipServerErrors(policy retryablehttp.CheckRetry) retryablehttp.CheckRetry {
	return func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		if resp != nil && resp.StatusCode == http.StatusInternalServerError {
			return false, err
		}
		return policy(ctx, resp, err)
	}
}
