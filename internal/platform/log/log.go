// Package log wraps logrus with context-aware helpers. Entries carry the
// request id placed in the context by the HTTP adapter, when present.
package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger is the process-wide logger.
var Logger = logrus.New()

// Formatter renders entries as "[<time>] [LEVEL] [file:line] <message> [req:<id>] k=v ...".
type Formatter struct {
	TimestampFormat string
}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	fmt.Fprintf(b, "[%s] [%s] ", entry.Time.Format(f.TimestampFormat), strings.ToUpper(entry.Level.String()))
	if file, line := callerOutsideLogging(); file != "" {
		fmt.Fprintf(b, "[%s:%d] ", file, line)
	}
	b.WriteString(entry.Message)

	if rid, ok := entry.Data[requestIDField].(string); ok && rid != "" {
		fmt.Fprintf(b, " [req:%s]", rid)
	}
	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if k != requestIDField {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%v", k, entry.Data[k])
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// callerOutsideLogging walks the stack past logrus and this package.
func callerOutsideLogging() (string, int) {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		skip := strings.Contains(frame.File, "github.com/sirupsen/logrus") ||
			strings.HasSuffix(frame.File, "platform/log/log.go") ||
			strings.Contains(frame.File, "runtime/")
		if !skip {
			parts := strings.Split(frame.File, "/")
			return parts[len(parts)-1], frame.Line
		}
		if !more {
			return "", 0
		}
	}
}

const requestIDField = "request_id"

type requestIDKey struct{}

// WithRequestID returns a context whose log entries are tagged with id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func entry(ctx context.Context) *logrus.Entry {
	if id := requestIDFromContext(ctx); id != "" {
		return Logger.WithField(requestIDField, id)
	}
	return logrus.NewEntry(Logger)
}

// For returns an entry bound to ctx, for attaching fields.
func For(ctx context.Context) *logrus.Entry { return entry(ctx) }

func Debugf(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Errorf(format, args...)
}

// Fatalf logs at fatal level and exits the process.
func Fatalf(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Fatalf(format, args...)
}

func SetOutput(out io.Writer) { Logger.SetOutput(out) }

// Init installs the formatter and parses level ("debug", "info", ...).
// An unrecognized level falls back to info and is reported as an error.
func Init(level string) error {
	Logger.SetFormatter(&Formatter{TimestampFormat: "2006-01-02 15:04:05"})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		Logger.SetLevel(logrus.InfoLevel)
		return fmt.Errorf("log level %q: %w", level, err)
	}
	Logger.SetLevel(lvl)
	return nil
}
