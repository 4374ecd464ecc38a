package tui

import (
	"errors"
	"strings"

	"github.com/dm/actdash/internal/client"
)

// classifyError maps a fetch error to a short human-readable category for
// the alert title line. Unknown errors are shown verbatim, truncated to 40
// characters.
func classifyError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, client.ErrNoMeasurements) {
		return "No measurements reported"
	}
	msg := err.Error()
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "connection refused"):
		return "Connection refused"
	case strings.Contains(lower, "401") || strings.Contains(lower, "unauthorized"):
		return "Authentication failed (401)"
	case strings.Contains(lower, "403") || strings.Contains(lower, "forbidden"):
		return "Authentication failed (403)"
	case strings.Contains(lower, "status 404"):
		return "Endpoint not exposed (404)"
	case strings.Contains(lower, "deadline exceeded") || strings.Contains(lower, "timeout"):
		return "Timeout"
	case isTLSError(err):
		return "TLS error"
	case strings.Contains(lower, "decode"):
		return "Malformed response"
	}
	r := []rune(msg)
	if len(r) > 40 {
		return string(r[:40]) + "..."
	}
	return msg
}

// isTLSError reports whether err looks like a certificate or handshake failure.
func isTLSError(err error) bool {
	if err == nil {
		return false
	}
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "tls") ||
		strings.Contains(lower, "x509") ||
		strings.Contains(lower, "certificate")
}
