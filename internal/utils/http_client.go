package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-pdf-decrypter"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL. A zero timeout leaves
// requests unbounded, so they only end when the transport resolves or the
// request context is cancelled.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:5000", 0)
//	resp, err := client.R().SetContext(ctx).Get("/health")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", userAgent)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
