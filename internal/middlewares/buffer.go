package middlewares

import (
	"bytes"
	"log"
	"net/http"
)

// bufferedWriter holds back the status and the body of a response,
// so an error can still be swapped for a rendered error page
type bufferedWriter struct {
	http.ResponseWriter
	buf    bytes.Buffer
	status int
}

func newBufferedWriter(w http.ResponseWriter) *bufferedWriter {
	return &bufferedWriter{ResponseWriter: w, status: http.StatusOK}
}

func (bw *bufferedWriter) WriteHeader(statusCode int) {
	bw.status = statusCode
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	return bw.buf.Write(b)
}

// failed reports whether the handler answered with an error status
func (bw *bufferedWriter) failed() bool {
	return bw.status >= http.StatusBadRequest
}

// discard drops the buffered body, the headers stay
func (bw *bufferedWriter) discard() {
	bw.buf.Reset()
}

// flush sends what was held back to the client
func (bw *bufferedWriter) flush() {
	bw.ResponseWriter.WriteHeader(bw.status)
	if bw.buf.Len() == 0 {
		return
	}
	if _, err := bw.buf.WriteTo(bw.ResponseWriter); err != nil {
		log.Printf("Error writing response body: %v", err)
	}
}
