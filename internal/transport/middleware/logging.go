package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	chiMiddleware "github.com/go-chi/chi/middleware"
)

const redacted = "[REDACTED]"

// maxLoggedBody caps the bytes of a body held for a single record.
const maxLoggedBody = 4 << 10

const omittedBody = "[OMITTED: body larger than 4KiB]"

// piiKeys match, case-insensitively and by substring, JSON keys and header
// names whose values are never logged. Salary and birth date are employee PII.
var piiKeys = []string{
	"salary",
	"dateofbirth",
	"date_of_birth",
	"authorization",
	"cookie",
	"token",
	"secret",
}

// LoggingMiddleware writes one record per request once the handler returns.
// 4xx responses log at warn and 5xx at error.
func LoggingMiddleware(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqBody, err := captureRequestBody(r)
			if err != nil {
				logger.WarnContext(r.Context(), "failed to read request body for logging", "error", err)
			}

			respBody := &cappedBuffer{}
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			ww.Tee(respBody)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			logger.Log(r.Context(), levelFor(status), "request completed",
				"request_id", chiMiddleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"query", r.URL.RawQuery,
				"remote_addr", r.RemoteAddr,
				"headers", redactHeaders(r.Header),
				"request_body", reqBody.logValue(),
				"status_code", status,
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"response_body", respBody.logValue(),
			)
		})
	}
}

// cappedBuffer keeps at most maxLoggedBody bytes and swallows the rest.
type cappedBuffer struct {
	buf      bytes.Buffer
	overflow bool
}

func (c *cappedBuffer) Write(p []byte) (int, error) {
	n := len(p)
	if room := maxLoggedBody - c.buf.Len(); n > room {
		c.overflow = true
		p = p[:max(room, 0)]
	}
	c.buf.Write(p)
	return n, nil
}

// logValue is the redacted body, or a placeholder when it did not fit. A cut
// JSON document cannot be redacted, so it is never logged.
func (c *cappedBuffer) logValue() string {
	if c.overflow {
		return omittedBody
	}
	return redactBody(c.buf.Bytes())
}

// captureRequestBody copies up to maxLoggedBody bytes of the request body and
// leaves the full body readable for the handler.
func captureRequestBody(r *http.Request) (*cappedBuffer, error) {
	captured := &cappedBuffer{}
	if r.Body == nil || r.Body == http.NoBody {
		return captured, nil
	}

	prefix, err := io.ReadAll(io.LimitReader(r.Body, maxLoggedBody+1))
	r.Body = struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(prefix), r.Body), r.Body}

	_, _ = captured.Write(prefix)
	return captured, err
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func isPII(name string) bool {
	lower := strings.ToLower(name)
	for _, key := range piiKeys {
		if strings.Contains(lower, key) {
			return true
		}
	}
	return false
}

func redactHeaders(headers http.Header) map[string]string {
	out := make(map[string]string, len(headers))
	for name, values := range headers {
		if isPII(name) {
			out[name] = redacted
			continue
		}
		out[name] = strings.Join(values, ", ")
	}
	return out
}

// redactBody masks PII keys of a JSON body. Anything that is not JSON is
// logged as is.
func redactBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return string(body)
	}

	masked, err := json.Marshal(redactValue(doc))
	if err != nil {
		return redacted
	}
	return string(masked)
}

func redactValue(v interface{}) interface{} {
	switch node := v.(type) {
	case map[string]interface{}:
		for key, child := range node {
			if isPII(key) {
				node[key] = redacted
				continue
			}
			node[key] = redactValue(child)
		}
		return node
	case []interface{}:
		for i, child := range node {
			node[i] = redactValue(child)
		}
		return node
	default:
		return v
	}
}
