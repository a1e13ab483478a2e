package xhttp

import (
	"net/http"
	stdurl "net/url"
	"strings"
)

// ParseHostScheme parses any address string and return host, scheme and error.
// If addr is a host/domain style string, the returned scheme will be "".
func ParseHostScheme(addr string) (string, string, error) {
	if strings.Contains(addr, "://") {
		url, err := stdurl.Parse(addr)
		if err != nil {
			return "", "", err
		}
		return url.Host, url.Scheme, nil
	}

	url, err := stdurl.Parse("https://" + addr)
	if err != nil {
		return "", "", err
	}
	return url.Host, "", nil
}

// RequestOrigin returns the origin of the request in "scheme://host" form
// without a trailing slash. The scheme honors the "X-Forwarded-Proto" header
// set by reverse proxies, then falls back to the TLS state of the connection.
func RequestOrigin(r *http.Request) string {
	scheme := "http"
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if r.TLS != nil {
		scheme = "https"
	}
	host := r.Host
	if forwarded := r.Header.Get("X-Forwarded-Host"); forwarded != "" {
		host = forwarded
	}
	return scheme + "://" + host
}
