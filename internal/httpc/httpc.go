package httpc

import (
	"net"
	"net/http"
	"net/url"
	"time"
)

// New builds the default *http.Client for the Cart API. The library
// never retries or rate-limits on its own; this only tunes connection
// reuse and per-phase timeouts.
func New(timeout time.Duration) *http.Client {
	return NewWithProxy(timeout, nil)
}

func NewWithProxy(timeout time.Duration, proxyURL *url.URL) *http.Client {
	var proxyFunc func(*http.Request) (*url.URL, error)
	if proxyURL != nil {
		proxyFunc = http.ProxyURL(proxyURL)
	}

	tr := &http.Transport{
		Proxy: proxyFunc,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,

		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 15 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,

		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,

		ForceAttemptHTTP2: true,
	}

	return &http.Client{
		Transport: tr,
		Timeout:   timeout,
	}
}
