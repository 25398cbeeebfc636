// Package redact removes credentials and other sensitive fragments from strings
// before they are logged or returned in error responses. Generation failures in
// particular can echo the request URL, which carries the API key as a query
// parameter.
package redact

import "regexp"

// Redaction placeholders
const (
	RedactionPlaceholder     = "[REDACTED]"
	RedactedKeyPlaceholder   = "[REDACTED_KEY]"
	RedactedTokenPlaceholder = "[REDACTED_TOKEN]"
	RedactedPathPlaceholder  = "[REDACTED_PATH]"
	RedactedEmailPlaceholder = "[REDACTED_EMAIL]"
	RedactedStackPlaceholder = "[STACK_TRACE_REDACTED]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Rules are applied in order; key patterns run before the generic path rule so
// that a key embedded in a URL is replaced even if the URL is later collapsed.
var rules = []rule{
	// Google API keys
	{regexp.MustCompile(`AIza[0-9A-Za-z_\-]{20,}`), RedactedKeyPlaceholder},
	// Credentials passed as query parameters
	{
		regexp.MustCompile(`(?i)([?&](?:key|api_key|apikey|access_token)=)[^&\s"']+`),
		"${1}" + RedactedKeyPlaceholder,
	},
	// key=value style assignments
	{
		regexp.MustCompile(`(?i)(api[_-]?key|secret|token)(["'\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`),
		RedactedKeyPlaceholder,
	},
	{regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/=]{8,}`), "Bearer " + RedactedTokenPlaceholder},
	{regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`), RedactedStackPlaceholder},
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), RedactedEmailPlaceholder},
	{regexp.MustCompile(`(/[\w.-]+){2,}`), RedactedPathPlaceholder},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
