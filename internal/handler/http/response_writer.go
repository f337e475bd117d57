package http

import "net/http"

// statusWriter wraps http.ResponseWriter to record the status code and the
// number of body bytes written, for the request log line.
type statusWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func newStatusWriter(w http.ResponseWriter) *statusWriter {
	// status defaults to 200: a handler that writes the body without an
	// explicit WriteHeader gets 200 from net/http.
	return &statusWriter{ResponseWriter: w, status: http.StatusOK}
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
