package http

import (
	"bytes"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/thsampaio/customer-gateway/internal/logger"
	"github.com/thsampaio/customer-gateway/internal/router"
	"github.com/thsampaio/customer-gateway/internal/utils"
)

// bufferedResponse captures the downstream response in memory so the rate
// limiter can inspect the status code and, when the client has just crossed
// the failure threshold, replace the response entirely before anything
// reaches the wire.
type bufferedResponse struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func newBufferedResponse() *bufferedResponse {
	return &bufferedResponse{header: make(http.Header), status: http.StatusOK}
}

func (b *bufferedResponse) Header() http.Header {
	return b.header
}

func (b *bufferedResponse) WriteHeader(status int) {
	b.status = status
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	return b.body.Write(p)
}

// flush replays the captured response onto w.
func (b *bufferedResponse) flush(w http.ResponseWriter) {
	for key, values := range b.header {
		w.Header()[key] = values
	}
	w.WriteHeader(b.status)
	_, _ = w.Write(b.body.Bytes())
}

// rateLimitMiddleware locks out clients that keep failing authentication.
//
// Each 401 produced downstream increments a per-client failure counter with
// a sliding expiry; reaching the configured number of attempts locks the
// client out for the jail duration and the 401 is replaced with a 429. A
// locked client is answered 429 immediately, without running the rest of the
// chain. A 2xx response clears the client's counter; redirects and other
// statuses leave it untouched.
//
// The limiter fails open: when the backing store is unreachable the request
// proceeds untouched and a warning is logged. Losing rate limiting is
// preferable to refusing all traffic.
func (h *Handler) rateLimitMiddleware() router.Middleware {
	return router.MiddlewareFunc(func(w http.ResponseWriter, r *http.Request, next http.Handler) {
		ctx := r.Context()
		log := logger.FromContext(ctx)
		id := clientID(r)

		locked, remaining, err := h.rateLimits.IsLocked(ctx, id)
		if err != nil {
			log.Warn().Err(err).Str("client", id).Msg("rate limit store unavailable, failing open")
			next.ServeHTTP(w, r)
			return
		}
		if locked {
			utils.WriteError(w, http.StatusTooManyRequests,
				fmt.Sprintf("Wait %d seconds.", int(remaining.Seconds())))
			return
		}

		buf := newBufferedResponse()
		next.ServeHTTP(buf, r)

		switch {
		case buf.status == http.StatusUnauthorized:
			count, err := h.rateLimits.RecordFailure(ctx, id, h.rateLimitCfg.Window)
			if err != nil {
				log.Warn().Err(err).Str("client", id).Msg("rate limit store unavailable, failing open")
				buf.flush(w)
				return
			}

			if count >= int64(h.rateLimitCfg.Attempts) {
				if err := h.rateLimits.Lock(ctx, id, h.rateLimitCfg.Jail); err != nil {
					log.Warn().Err(err).Str("client", id).Msg("failed to lock client")
				}
				log.Warn().Str("client", id).Int64("failures", count).Msg("client locked out")
				utils.WriteError(w, http.StatusTooManyRequests,
					fmt.Sprintf("Too many attempts. Account locked for %d seconds.", int(h.rateLimitCfg.Jail.Seconds())))
				return
			}

			buf.header.Set("X-RateLimit-Remaining",
				strconv.FormatInt(int64(h.rateLimitCfg.Attempts)-count, 10))
			buf.flush(w)

		case buf.status >= http.StatusOK && buf.status < http.StatusMultipleChoices:
			if err := h.rateLimits.Clear(ctx, id); err != nil {
				log.Warn().Err(err).Str("client", id).Msg("failed to clear failure counter")
			}
			buf.flush(w)

		default:
			buf.flush(w)
		}
	})
}

// clientID derives the rate limiting key for a request from the remote
// address, without the ephemeral port. A remote address that cannot be
// split falls back to a shared bucket.
func clientID(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		return "undefined"
	}
	return host
}
