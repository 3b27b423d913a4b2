package provider

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// transport allows custom attributes to be added to each HTTP request sent by an
// http.Client that uses this transport
type transport struct {
	BaseURL      string
	MaxIdleConns int
	IdleConnTimeout,
	TLSHandshakeTimeout,
	ResponseHeaderTimeout time.Duration
}

// RoundTrip adds upon the normal http.Transport.RoundTrip() behavior to prepend the
// provider origin to each request path.
func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	url := req.URL.String()

	baseURL := strings.TrimSuffix(t.BaseURL, "/")
	path := "/" + strings.TrimPrefix(url, "/")
	newURL, err := req.URL.Parse(baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("error building provider url: %w", err)
	}
	req.URL = newURL
	log.Debugf("making request to conferencing provider: %s %s", req.Method, path)

	return http.DefaultTransport.RoundTrip(req)
}
