package logging

import (
	"fmt"
	"github.com/go-chi/chi/middleware"
	"github.com/sirupsen/logrus"
	"net/http"
	"time"
)

// JSONLogFormatter turns chi access log entries into structured logrus entries.
type JSONLogFormatter struct {
	App string
}

// JSONLogEntry is the logrus side of a single request.
type JSONLogEntry struct {
	request *http.Request
	app     string
}

// NewLogEntry creates a new entry for the Logrus log
func (j *JSONLogFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	return &JSONLogEntry{
		request: r,
		app:     j.App,
	}
}

func (j *JSONLogEntry) fields() logrus.Fields {
	r := j.request
	return logrus.Fields{
		"remote_addr":           r.RemoteAddr,
		"request":               fmt.Sprintf("%s %s %s", r.Method, r.RequestURI, r.Proto),
		"request_id":            middleware.GetReqID(r.Context()),
		"request_method":        r.Method,
		"request_uri":           r.RequestURI,
		"received_length":       r.ContentLength,
		"received_content_type": r.Header.Get("Content-Type"),
		"app":                   j.app,
		"type":                  "access",
		"user_agent":            r.UserAgent(),
	}
}

// Write outputs the log entry into the log
func (j *JSONLogEntry) Write(status, bytes int, header http.Header, elapsed time.Duration, extra interface{}) {
	fields := j.fields()
	fields["status"] = status
	fields["request_time"] = elapsed.Seconds()
	fields["sent_bytes"] = bytes
	fields["sent_content_type"] = header.Get("Content-Type")
	if extra != nil {
		fields["extra"] = extra
	}
	logrus.WithFields(fields).Debug()
}

// Panic outputs the log entry into the log
func (j *JSONLogEntry) Panic(v interface{}, stack []byte) {
	fields := j.fields()
	fields["error"] = v
	fields["stack"] = string(stack)
	logrus.WithFields(fields).Errorf("%+v", v)
}
