// Package smoother implements the tile smoother: a deterministic,
// multi-pass grid rewriter that turns a raw wall/floor TileMap into one
// decorated with slopes, end-caps, rounded corners, dead-ends and cut
// slope variants.
package smoother

import (
	"io"
	"log"
)

// discardLogger is the zero-value default: tracing is opt-in, never part
// of the smoother's observable behavior.
var discardLogger = log.New(io.Discard, "", 0)

// Options is the subset of cave configuration the smoother consumes: the
// logical grid size and the four pass switches. Border/cell-size/layer
// fields a renderer would need live in caveconfig instead — the smoother
// never sees them.
type Options struct {
	Width, Height int

	// Smoothing is the master switch for the edge, corner and point
	// passes. When false, only RemoveDiagonals (if set) still runs.
	Smoothing bool
	// RemoveDiagonals enables the diagonal-gap pass (and the one-shot
	// edge re-smooth it triggers when it changes anything).
	RemoveDiagonals bool
	// SmoothCorners enables the corner pass. Ignored when Smoothing is
	// false.
	SmoothCorners bool
	// SmoothPoints enables the point pass. Ignored when Smoothing is
	// false.
	SmoothPoints bool
}

// Smoother applies Options' configured passes to a TileMap. It holds no
// mutable state beyond an optional logger — the compiled pattern tables
// it calls into are package-level and shared read-only across every
// instance, so a Smoother is safe to use concurrently with other distinct
// Smoother values (never with itself against the same TileMap, since
// Smooth mutably borrows its argument for the call's duration).
type Smoother struct {
	Options Options
	Logger  *log.Logger
}

// New returns a Smoother for the given options. A nil logger is replaced
// with a discard logger so callers never need a nil check of their own.
func New(opts Options, logger *log.Logger) *Smoother {
	if logger == nil {
		logger = discardLogger
	}
	return &Smoother{Options: opts, Logger: logger}
}

// Smooth runs the configured passes against tm in place, per spec:
//
//  1. If smoothing is enabled: edge pass, then (if enabled) the
//     diagonal-gap pass — re-running the edge pass once, with a cleared
//     mask, if the diagonal pass changed anything — then (if enabled) the
//     corner pass sharing the edge pass's accumulated mask, then (if
//     enabled) the point pass with its own fresh mask.
//  2. Else, if diagonal removal alone is enabled, only the diagonal-gap
//     pass runs.
//
// SmoothCorners and SmoothPoints are ignored when Smoothing is false.
func (s *Smoother) Smooth(tm TileMap) {
	opts := s.Options
	mask := newMaskGrid(tm.Width(), tm.Height())

	if opts.Smoothing {
		s.Logger.Printf("smoother: edge pass")
		edgePass(tm, mask)

		if opts.RemoveDiagonals {
			s.Logger.Printf("smoother: diagonal-gap pass")
			if diagonalPass(tm) {
				s.Logger.Printf("smoother: diagonal pass changed the grid, re-running edge pass")
				mask.clear()
				edgePass(tm, mask)
			}
		}

		if opts.SmoothCorners {
			s.Logger.Printf("smoother: corner pass")
			cornerPass(tm, mask)
		}

		if opts.SmoothPoints {
			s.Logger.Printf("smoother: point pass")
			snapshot := tm.Clone()
			pointPass(tm, snapshot)
		}
		return
	}

	if opts.RemoveDiagonals {
		s.Logger.Printf("smoother: diagonal-gap pass only (smoothing disabled)")
		diagonalPass(tm)
	}
}
