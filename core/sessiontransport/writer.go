package sessiontransport

import "net/http"

// WriteTracker is implemented by response writers that report whether the
// response headers were sent. FromHTTP relies on it to refuse late cookies.
type WriteTracker interface {
	Written() bool
}

// ResponseWriter wraps an http.ResponseWriter and records whether the
// response headers were sent.
type ResponseWriter struct {
	http.ResponseWriter
	status  int
	written bool
}

// TrackWrites wraps w so FromHTTP can detect sent headers.
// A writer that already tracks writes is returned unchanged.
func TrackWrites(w http.ResponseWriter) http.ResponseWriter {
	if _, ok := w.(WriteTracker); ok {
		return w
	}
	return &ResponseWriter{ResponseWriter: w}
}

func (w *ResponseWriter) WriteHeader(status int) {
	if !w.written {
		w.status = status
		w.written = true
		w.ResponseWriter.WriteHeader(status)
	}
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.written {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// Written returns true if WriteHeader has been called.
func (w *ResponseWriter) Written() bool {
	return w.written
}

// Status returns the HTTP status code, or 0 before the first write.
func (w *ResponseWriter) Status() int {
	return w.status
}

// Flush implements http.Flusher if the underlying ResponseWriter supports it.
func (w *ResponseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		if !w.written {
			w.WriteHeader(http.StatusOK)
		}
		f.Flush()
	}
}

// Unwrap returns the underlying ResponseWriter for http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
