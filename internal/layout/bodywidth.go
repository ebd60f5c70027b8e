// Package layout provides pure functions for computing the centered text
// column: given a terminal width, a configured body width, and a minimum
// body width, it resolves the effective body width and the symmetric
// left/right margins that center it.
package layout

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidBodyWidth is returned when a configured body width is neither a
// positive column count nor a fraction strictly between 0 and 1. Callers
// recover by falling back to DefaultBodyWidth and surfacing a diagnostic;
// it is never fatal.
var ErrInvalidBodyWidth = errors.New("body width must be a positive column count or a fraction between 0 and 1")

// DefaultColumns is the compile-time default body width in columns,
// used as the fallback when the configured width is invalid.
const DefaultColumns = 66

// DefaultMinimumWidth is the default floor below which the body width
// never shrinks.
const DefaultMinimumWidth = 40

type kind int

const (
	kindNone kind = iota
	kindColumns
	kindFraction
)

// BodyWidth is the configured width of the text body. Exactly one of two
// kinds is active: an absolute column count or a fraction of the window
// width. The zero value is invalid and fails validation.
type BodyWidth struct {
	kind kind
	cols int
	frac float64
}

// Columns returns a BodyWidth of n absolute character columns.
func Columns(n int) BodyWidth {
	return BodyWidth{kind: kindColumns, cols: n}
}

// Fraction returns a BodyWidth that is a fraction f of the window width.
func Fraction(f float64) BodyWidth {
	return BodyWidth{kind: kindFraction, frac: f}
}

// DefaultBodyWidth returns the fallback body width, Columns(66).
func DefaultBodyWidth() BodyWidth {
	return Columns(DefaultColumns)
}

// IsFraction reports whether the width is expressed as a fraction of the
// window rather than an absolute column count.
func (w BodyWidth) IsFraction() bool { return w.kind == kindFraction }

// Cols returns the column count of a Columns width. It is 0 for fractions.
func (w BodyWidth) Cols() int { return w.cols }

// Frac returns the fraction of a Fraction width. It is 0 for column counts.
func (w BodyWidth) Frac() float64 { return w.frac }

// Validate checks that the width is a well-formed column count or fraction.
func (w BodyWidth) Validate() error {
	switch w.kind {
	case kindColumns:
		if w.cols <= 0 {
			return fmt.Errorf("%w: got %d columns", ErrInvalidBodyWidth, w.cols)
		}
	case kindFraction:
		if w.frac <= 0 || w.frac >= 1 || math.IsNaN(w.frac) {
			return fmt.Errorf("%w: got fraction %v", ErrInvalidBodyWidth, w.frac)
		}
	default:
		return ErrInvalidBodyWidth
	}
	return nil
}

// String returns the configuration-surface form of the width: a bare
// integer for columns ("66") or a decimal for fractions ("0.62").
func (w BodyWidth) String() string {
	switch w.kind {
	case kindColumns:
		return strconv.Itoa(w.cols)
	case kindFraction:
		return strconv.FormatFloat(w.frac, 'g', -1, 64)
	default:
		return "invalid"
	}
}

// ParseBodyWidth parses the configuration form of a body width. A bare
// integer is a column count, a decimal is a fraction of the window width.
// Anything else (including out-of-range values) is ErrInvalidBodyWidth.
func ParseBodyWidth(s string) (BodyWidth, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return BodyWidth{}, fmt.Errorf("%w: empty value", ErrInvalidBodyWidth)
	}

	if n, err := strconv.Atoi(s); err == nil {
		w := Columns(n)
		if err := w.Validate(); err != nil {
			return BodyWidth{}, err
		}
		return w, nil
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		w := Fraction(f)
		if err := w.Validate(); err != nil {
			return BodyWidth{}, err
		}
		return w, nil
	}

	return BodyWidth{}, fmt.Errorf("%w: got %q", ErrInvalidBodyWidth, s)
}

// evenize rounds n down to an even number. Halving an even remainder keeps
// the left and right margins symmetric.
func evenize(n int) int { return n - n%2 }

// round2 rounds f to two decimal places, the fixed precision used for
// stable fraction comparison.
func round2(f float64) float64 { return math.Round(f*100) / 100 }

// EffectiveBodyWidth resolves the configured width against a window width
// and a minimum width. The window and minimum are first normalized to even
// numbers.
//
// A Columns width is capped at the window width, then floored at the
// minimum; the minimum wins when the two conflict. A Fraction width is
// capped at 1, then floored at the fraction the minimum represents of the
// window, both at two-decimal precision. The result keeps the kind of the
// input: fractions stay fractions until the margin step multiplies by the
// window width.
func EffectiveBodyWidth(spec BodyWidth, windowWidth, minWidth int) (BodyWidth, error) {
	if err := spec.Validate(); err != nil {
		return BodyWidth{}, err
	}

	evenWindow := evenize(windowWidth)
	evenMin := evenize(minWidth)

	switch spec.kind {
	case kindColumns:
		return Columns(max(min(spec.cols, evenWindow), evenMin)), nil
	default:
		minFrac := 1.0
		if evenWindow > 0 {
			minFrac = round2(float64(evenMin) / float64(evenWindow))
		}
		return Fraction(max(round2(min(spec.frac, 1.0)), minFrac)), nil
	}
}

// Margins computes the symmetric margin that centers the body described by
// spec in a window of windowWidth columns. The same value applies to both
// the left and right side.
//
// A resolved Fraction is converted to columns against the raw window width,
// truncating. The margin is (windowWidth - bodyWidth) / 2 with integer
// division: the rounding rule is round-down, and it is fixed here for all
// callers. The margin is clamped non-negative since the minimum-width floor
// can push the body wider than the window.
//
// ok is false when the spec is invalid and no width can be resolved; the
// caller must leave prior margins untouched and surface a diagnostic.
func Margins(spec BodyWidth, windowWidth, minWidth int) (margin int, ok bool) {
	resolved, err := EffectiveBodyWidth(spec, windowWidth, minWidth)
	if err != nil {
		return 0, false
	}

	width := resolved.cols
	if resolved.IsFraction() {
		width = int(resolved.frac * float64(windowWidth))
	}

	margin = (windowWidth - width) / 2
	if margin < 0 {
		margin = 0
	}
	return margin, true
}

// BodyColumns returns the resolved body width in columns for spec in a
// window of windowWidth columns. It is the width the margin calculation
// centers, useful for sizing the rendered text column.
func BodyColumns(spec BodyWidth, windowWidth, minWidth int) (int, error) {
	resolved, err := EffectiveBodyWidth(spec, windowWidth, minWidth)
	if err != nil {
		return 0, err
	}
	if resolved.IsFraction() {
		return int(resolved.frac * float64(windowWidth)), nil
	}
	return resolved.cols, nil
}
