// Package network provides the HTTP client used for cover-art probes.
package network

import (
	"net/http"
	"time"

	"github.com/nowplaying-cli/nowplaying/constant"
)

// Client is shared by every probe. Thumbnail requests are small and go to a single CDN host, so
// the pool is sized for bursts of probes when a queue advances quickly.
var Client = &http.Client{
	Timeout:   30 * time.Second,
	Transport: &userAgent{next: newTransport()},
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 20
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 15 * time.Second
	return t
}

type userAgent struct {
	next http.RoundTripper
}

func (u *userAgent) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return u.next.RoundTrip(req)
	}

	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", constant.UserAgent)
	return u.next.RoundTrip(req)
}
