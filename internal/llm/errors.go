package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Kind classifies a provider failure.
type Kind int

const (
	// KindUnavailable covers network failures and 5xx replies.
	KindUnavailable Kind = iota
	// KindRateLimit is a 429 from the vendor.
	KindRateLimit
	// KindInvalid means the reply did not match the requested schema.
	KindInvalid
	// KindTruncated means generation stopped at MaxTokens.
	KindTruncated
)

func (k Kind) String() string {
	switch k {
	case KindRateLimit:
		return "rate limited"
	case KindInvalid:
		return "invalid response"
	case KindTruncated:
		return "response truncated"
	default:
		return "provider unavailable"
	}
}

// Error is returned by providers for every vendor-side failure.
type Error struct {
	Kind       Kind
	RetryAfter time.Duration   // set by some rate limits
	Content    json.RawMessage // the offending reply, for KindInvalid and KindTruncated
	Err        error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return "llm: " + e.Kind.String()
	}
	return fmt.Sprintf("llm: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the Kind of err, and false when err is not an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// fromStatus classifies an SDK error by the HTTP status it carried.
func fromStatus(status int, err error) error {
	if status == http.StatusTooManyRequests {
		return &Error{Kind: KindRateLimit, Err: err}
	}
	return &Error{Kind: KindUnavailable, Err: err}
}

func invalid(content json.RawMessage, format string, args ...any) error {
	return &Error{Kind: KindInvalid, Content: content, Err: fmt.Errorf(format, args...)}
}
