package httpapi

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/Overland-East-Bay/intergalactic-planner/internal/platform/log"
	"github.com/Overland-East-Bay/intergalactic-planner/internal/ports/out/idempotency"
)

const (
	IdempotencyKeyHeader = "Idempotency-Key"
	ReplayedHeader       = "Idempotent-Replayed"
)

// Idempotent replays the stored 2xx response for a retried request carrying the same
// Idempotency-Key, path and body, and rejects reuse of a key with a different body.
// Requests without the header pass through.
func (s *Server) Idempotent(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(IdempotencyKeyHeader)
		if key == "" || s.Idem == nil {
			next.ServeHTTP(w, r)
			return
		}
		ctx := r.Context()

		raw, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "unreadable request body", nil)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(raw))
		sum := sha256.Sum256(raw)
		bodyHash := hex.EncodeToString(sum[:])

		fp := idempotency.Fingerprint{
			Key:      idempotency.Key(key),
			Method:   r.Method,
			Route:    r.URL.Path,
			BodyHash: bodyHash,
		}
		if meta, ok, err := s.Idem.Get(ctx, fp.Meta()); err != nil {
			s.internalError(w, r, err)
			return
		} else if ok {
			if string(meta.Body) != bodyHash {
				writeError(w, r, http.StatusConflict, "IDEMPOTENCY_KEY_REUSE", "idempotency key reuse with different payload", nil)
				return
			}
		} else {
			_ = s.Idem.Put(ctx, fp.Meta(), idempotency.Record{
				ContentType: "text/plain",
				Body:        []byte(bodyHash),
			})
		}

		if rec, ok, err := s.Idem.Get(ctx, fp); err != nil {
			s.internalError(w, r, err)
			return
		} else if ok {
			log.Debugf(ctx, "httpapi: replaying %s %s for key %q", r.Method, r.URL.Path, key)
			if rec.ContentType != "" {
				w.Header().Set("Content-Type", rec.ContentType)
			}
			w.Header().Set(ReplayedHeader, "true")
			w.WriteHeader(rec.StatusCode)
			_, _ = w.Write(rec.Body)
			return
		}

		cw := &captureWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(cw, r)
		if cw.status >= 200 && cw.status < 300 {
			_ = s.Idem.Put(ctx, fp, idempotency.Record{
				StatusCode:  cw.status,
				ContentType: cw.Header().Get("Content-Type"),
				Body:        cw.buf.Bytes(),
			})
		}
	})
}

// captureWriter tees the response body so it can be stored for replay.
type captureWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	buf         bytes.Buffer
}

func (c *captureWriter) WriteHeader(status int) {
	if !c.wroteHeader {
		c.status = status
		c.wroteHeader = true
	}
	c.ResponseWriter.WriteHeader(status)
}

func (c *captureWriter) Write(b []byte) (int, error) {
	c.wroteHeader = true
	c.buf.Write(b)
	return c.ResponseWriter.Write(b)
}
