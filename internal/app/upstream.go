package app

import (
	"net/http"

	"github.com/newrelic/go-agent/v3/newrelic"

	"cabadmin/internal/config"
	"cabadmin/internal/endpoint"
	"cabadmin/internal/gateway"
)

// NewUpstreamClient creates the client for the remote user, booking and common services.
// If nrApp is provided, outbound calls are recorded as external segments.
func NewUpstreamClient(cfg config.UpstreamConfig, nrApp *newrelic.Application) *gateway.Client {
	var transport http.RoundTripper = http.DefaultTransport
	if nrApp != nil {
		transport = newrelic.NewRoundTripper(transport)
	}

	registry := endpoint.NewRegistry(cfg.UserServiceURL, cfg.BookingServiceURL, cfg.CommonServiceURL)
	return gateway.NewClient(registry, &http.Client{
		Timeout:   cfg.Timeout,
		Transport: transport,
	})
}
