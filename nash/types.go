// Package nash - options and sentinel errors of the equilibrium adapter.
package nash

import (
	"errors"

	clog "github.com/charmbracelet/log"

	"github.com/katalvlaran/macid/oracle"
)

var (
	// ErrNilDiagram is returned when a nil *core.Diagram is supplied.
	ErrNilDiagram = errors.New("nash: diagram is nil")

	// ErrNilOracle is returned when WithOracle was given nil.
	ErrNilOracle = errors.New("nash: oracle is nil")

	// ErrOpenSubgame indicates a decision outside the target subgame is
	// strategically relevant (s-reachable) but carries no fixed rule:
	// the requested subgame is not closed under descendants.
	ErrOpenSubgame = errors.New("nash: subgame not closed: relevant outside decision unfixed")
)

// WarnFunc receives the adapter's recoverable-condition warnings.
type WarnFunc func(format string, args ...any)

// Option configures a solve call. Use with InSubgame, All, SubgamePerfect.
type Option func(*Options)

// Options holds configurable parameters of a solve call.
type Options struct {
	// Oracle is the equilibrium backend; defaults to oracle.New().
	Oracle oracle.Oracle

	// Algorithm is the pinned selector; only honored when Pinned.
	Algorithm oracle.Algorithm

	// Pinned records that the caller chose Algorithm explicitly.
	// Unpinned calls use the player-count defaults and the empty-pure
	// fallback.
	Pinned bool

	// Warn receives recoverable-condition warnings; defaults to
	// charmbracelet/log.
	Warn WarnFunc
}

// DefaultOptions returns the solve defaults: the bundled Enumerative
// oracle, no pinned algorithm, warnings through charmbracelet/log.
func DefaultOptions() Options {
	return Options{
		Oracle: oracle.New(),
		Warn:   func(format string, args ...any) { clog.Warnf(format, args...) },
	}
}

// WithOracle installs a different equilibrium backend.
// Passing nil has no effect.
func WithOracle(o oracle.Oracle) Option {
	return func(opts *Options) {
		if o != nil {
			opts.Oracle = o
		}
	}
}

// WithAlgorithm pins the solver selector for every oracle call of this
// solve. Pinned-but-incompatible selections are substituted with a
// compatible default and a warning; pinned pure-only enumeration that
// finds nothing stays empty (no automatic fallback).
func WithAlgorithm(a oracle.Algorithm) Option {
	return func(opts *Options) {
		opts.Algorithm = a
		opts.Pinned = true
	}
}

// WithWarnHandler replaces the warning sink. Passing nil silences
// warnings entirely.
func WithWarnHandler(fn WarnFunc) Option {
	return func(opts *Options) {
		if fn == nil {
			fn = func(string, ...any) {}
		}
		opts.Warn = fn
	}
}
