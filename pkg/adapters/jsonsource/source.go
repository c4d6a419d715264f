// Package jsonsource feeds a loop from a stream of JSON lines, decoding
// each object into the application's action type.
package jsonsource

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/weft/internal/logging"
	"github.com/aretw0/weft/pkg/ports"
)

// Source reads newline-delimited JSON from a reader and sends one action
// per line. Lines that fail to parse or decode are logged and skipped;
// a malformed producer must not kill the whole input stream.
type Source[A any] struct {
	name   string
	reader io.Reader
	logger *slog.Logger
	strict bool
}

// Option configures a Source.
type Option[A any] func(*Source[A])

// WithLogger sets the logger used to report skipped lines.
func WithLogger[A any](logger *slog.Logger) Option[A] {
	return func(s *Source[A]) { s.logger = logger }
}

// WithStrict makes decode failures fatal to the source instead of
// skipped. Useful in tests and controlled pipelines.
func WithStrict[A any]() Option[A] {
	return func(s *Source[A]) { s.strict = true }
}

// New creates a named source reading from r.
func New[A any](name string, r io.Reader, opts ...Option[A]) *Source[A] {
	s := &Source[A]{
		name:   name,
		reader: r,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name identifies the source for provenance.
func (s *Source[A]) Name() string { return s.name }

// Run reads lines until EOF or ctx cancellation, decoding each into an
// action and sending it through the address. EOF is a clean stop.
func (s *Source[A]) Run(ctx context.Context, send ports.Sender[A]) error {
	scanner := bufio.NewScanner(s.reader)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		action, err := s.decode(line)
		if err != nil {
			if s.strict {
				return fmt.Errorf("source %s: %w", s.name, err)
			}
			s.logger.Warn("skipping undecodable line", "source", s.name, "error", err)
			continue
		}
		if err := send.Send(ctx, action); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("source %s: read: %w", s.name, err)
	}
	return nil
}

// decode parses one JSON line into the action type. Objects go through
// mapstructure so field tags on the action type apply; scalar lines
// (strings, numbers) decode directly for primitive action types.
func (s *Source[A]) decode(line string) (A, error) {
	var action A

	var raw any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return action, fmt.Errorf("parse: %w", err)
	}

	if obj, ok := raw.(map[string]any); ok {
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:  &action,
			TagName: "json",
		})
		if err != nil {
			return action, fmt.Errorf("decoder: %w", err)
		}
		if err := decoder.Decode(obj); err != nil {
			return action, fmt.Errorf("decode: %w", err)
		}
		return action, nil
	}

	if err := json.Unmarshal([]byte(line), &action); err != nil {
		return action, fmt.Errorf("decode: %w", err)
	}
	return action, nil
}
