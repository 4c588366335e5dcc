package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists the lowercase header names that carry credentials.
// Both the masq ReplaceAttr below and middleware.RedactHeaders read it.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// Attribute keys whose values never reach the output. Customer email and
// point account numbers travel with order delivery and point awards; dsn
// holds the Postgres password.
var (
	redactedFields   = []string{"password", "secret", "token", "dsn", "email", "account_number"}
	redactedPrefixes = []string{"secret_", "api_key", "email_"}
)

// Values caught wherever they appear, e.g. inside an error message.
var redactedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	// JWTs; the segment minimum keeps version strings readable.
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
	// Credentials embedded in connection URLs, e.g. postgres://app:pw@db.
	regexp.MustCompile(`[a-z][a-z0-9+.\-]*://[^\s:/@]+:[^\s@]+@`),
}

func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(redactedFields)+len(redactedPrefixes)+len(redactedPatterns))
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range redactedFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range redactedPrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range redactedPatterns {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
