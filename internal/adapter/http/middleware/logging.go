package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// RoundTripperFunc adapts a function to http.RoundTripper.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// ZapLogging logs every round trip. Server errors and transport failures are
// logged at error level.
func ZapLogging(logger *zap.Logger, next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		start := time.Now()

		resp, err := next.RoundTrip(req)

		fields := []zap.Field{
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.String("request_id", req.Header.Get(HeaderRequestID)),
			zap.Duration("latency", time.Since(start)),
		}
		if err != nil {
			logger.Error("http request", append(fields, zap.Error(err))...)
			return nil, err
		}

		fields = append(fields, zap.Int("status", resp.StatusCode))
		if resp.StatusCode >= http.StatusInternalServerError {
			logger.Error("http request", fields...)
			return resp, nil
		}

		logger.Debug("http request", fields...)
		return resp, nil
	})
}
