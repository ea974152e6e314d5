package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/vk/defpeek/internal/config"
	"github.com/vk/defpeek/internal/ctxlog"
	"github.com/vk/defpeek/internal/dataset"
	"github.com/vk/defpeek/internal/format"
	"github.com/vk/defpeek/internal/recordstore"
)

// ErrNotFound is returned when a collection has no entry for the requested id.
var ErrNotFound = errors.New("no such entry")

// App encapsulates one inspection session.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	ctx       context.Context
	session   *config.Session
	data      *dataset.Dataset
	formatter *format.Formatter
}

// NewApp resolves the session configuration and builds the dataset and
// formatter. Nothing is read from the dataset until it is asked for. Results
// go to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config) (*App, error) {
	s, err := cfg.session()
	if err != nil {
		return nil, err
	}

	logger := newLogger(s.LogLevel, s.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Session configured.", "root", s.Root, "dir_overrides", s.Dirs)

	data := dataset.New(s.Root, s.Dirs)
	return &App{
		outW:      outW,
		logger:    logger,
		ctx:       ctx,
		session:   s,
		data:      data,
		formatter: format.New(data),
	}, nil
}

// Context returns a context carrying the session logger.
func (a *App) Context() context.Context {
	return a.ctx
}

// Session returns the resolved configuration.
func (a *App) Session() *config.Session {
	return a.session
}

// Dataset returns the session's collections.
func (a *App) Dataset() *dataset.Dataset {
	return a.data
}

// Formatter returns the session's value formatter.
func (a *App) Formatter() *format.Formatter {
	return a.formatter
}

// Print writes v to the output as indented JSON.
func (a *App) Print(v any) error {
	return recordstore.EncodeJSON(a.outW, v)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return id, nil
}
