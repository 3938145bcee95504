package agent

import (
	"strings"

	"pagila-agent-api/internal/utils/platformerrors"
)

// IsRateLimit reports whether an invocation failure is a provider 429. The
// framework surfaces provider errors as wrapped HTTP failures without a
// stable type, so the message check is an explicit contract with the
// upstream client's wording.
func IsRateLimit(err error) bool {
	if err == nil {
		return false
	}
	if platformerrors.TypeOf(err) == platformerrors.ErrorTypeRateLimited {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "too many requests")
}
