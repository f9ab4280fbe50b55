package log

import (
	"io"
	"net/http"

	"github.com/motemen/go-loghttp"
	"github.com/rs/zerolog"
)

// New console logger, debug enables request tracing output
func New(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Transport wraps next so every round trip is logged at debug level
func Transport(logger zerolog.Logger, next http.RoundTripper) http.RoundTripper {
	return &loghttp.Transport{
		Transport: next,
		LogRequest: func(req *http.Request) {
			logger.Debug().
				Str("method", req.Method).
				Str("url", req.URL.String()).
				Str("agent", req.UserAgent()).
				Msg("HTTP request")
		},
		LogResponse: func(resp *http.Response) {
			logger.Debug().
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL.String()).
				Int("status_code", resp.StatusCode).
				Str("content_type", resp.Header.Get("Content-Type")).
				Msg("HTTP response")
		},
	}
}
