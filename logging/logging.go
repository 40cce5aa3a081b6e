package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"gitlab.com/greyxor/slogor"
)

type ctxKey string

const (
	slogFields  ctxKey = "slog_fields"
	PackageName string = "package"
)

type ContextHandler struct {
	slog.Handler
}

// Handle adds contextual attributes to the Record before calling the underlying handler.
func (h ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(slogFields).([]slog.Attr); ok {
		for _, v := range attrs {
			r.AddAttrs(v)
		}
	}

	err := h.Handler.Handle(ctx, r)
	if err != nil {
		return fmt.Errorf("error handling record for a log: %+v: %w", r, err)
	}

	return nil
}

func (h ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return ContextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h ContextHandler) WithGroup(name string) slog.Handler {
	return ContextHandler{Handler: h.Handler.WithGroup(name)}
}

// NewHandler builds the colored console handler used by the CLI. Records logged with a
// context from AppendCtx or PackageCtx carry the context attributes.
func NewHandler(w io.Writer, level slog.Level) slog.Handler {
	return ContextHandler{Handler: slogor.NewHandler(w,
		slogor.SetLevel(level),
		slogor.SetTimeFormat(time.DateTime),
		slogor.ShowSource())}
}

// ParseLevel accepts debug, info, warn and error in any case.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level

	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q: %w", name, err)
	}

	return level, nil
}

// AppendCtx adds an slog attribute to the provided context so that it will be included in any Record created with such context.
func AppendCtx(parent context.Context, attr slog.Attr) context.Context {
	if v, ok := parent.Value(slogFields).([]slog.Attr); ok {
		v = append(v, attr)

		return context.WithValue(parent, slogFields, v)
	}

	v := []slog.Attr{attr}

	return context.WithValue(parent, slogFields, v)
}

func PackageCtx(packageName string) context.Context {
	return AppendCtx(context.Background(), slog.String(PackageName, packageName))
}
