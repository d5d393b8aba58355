package middleware

import (
	"net/http"

	"taskdesk/pkg/translator"

	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

// Language sets Accept-Language on requests that do not carry one, falling
// back to English.
func Language(lang string, next http.RoundTripper) http.RoundTripper {
	if lang == "" {
		lang = translator.LanguageEn
	}
	if next == nil {
		next = http.DefaultTransport
	}
	return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.Header.Get("Accept-Language") == "" {
			req = req.Clone(req.Context())
			req.Header.Set("Accept-Language", lang)
		}
		return next.RoundTrip(req)
	})
}

// RequestID tags every request with a fresh correlation id.
func RequestID(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.Header.Get(HeaderRequestID) == "" {
			req = req.Clone(req.Context())
			req.Header.Set(HeaderRequestID, uuid.NewString())
		}
		return next.RoundTrip(req)
	})
}
