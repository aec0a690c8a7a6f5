// Package placement positions floating boxes (tooltips, popovers, dropdown
// panels) next to an anchor.
//
// The resolver tries the requested side first. When the box does not fit on
// that side it flips once to the opposite side and keeps the result even if
// it still overflows. The cross-axis coordinate is then slid inward so the
// box never hangs past a viewport edge.
package placement

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/overlay/internal/surface"
)

// DefaultEdgeMargin is the gap, in cells, kept between a floating box and the
// viewport edge.
const DefaultEdgeMargin = 1

// Side is the side of the anchor the floating box is placed on.
type Side int

const (
	Top Side = iota
	Bottom
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

// Opposite returns the side across the main axis.
func (s Side) Opposite() Side {
	switch s {
	case Top:
		return Bottom
	case Bottom:
		return Top
	case Left:
		return Right
	default:
		return Left
	}
}

// Vertical reports whether the main axis of s is vertical.
func (s Side) Vertical() bool {
	return s == Top || s == Bottom
}

// ParseSide converts a configuration value into a Side.
func ParseSide(value string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "top":
		return Top, nil
	case "", "bottom":
		return Bottom, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return Bottom, fmt.Errorf("unknown side %q", value)
	}
}

// Placement is a resolved position. Top and Left are viewport cells; Side is
// the side actually used.
type Placement struct {
	Top     int
	Left    int
	Side    Side
	Flipped bool
}

// Rect returns the box occupied by a floating element of size at p.
func (p Placement) Rect(size surface.Size) surface.Rect {
	return surface.NewRect(p.Left, p.Top, size.Width, size.Height)
}

// Resolver computes placements with a configurable edge margin.
type Resolver struct {
	EdgeMargin int
}

// Resolve places floating next to anchor using DefaultEdgeMargin.
func Resolve(anchor surface.Rect, floating surface.Size, side Side, viewport surface.Rect, offset int) Placement {
	return Resolver{EdgeMargin: DefaultEdgeMargin}.Resolve(anchor, floating, side, viewport, offset)
}

// Resolve places floating next to anchor. The result depends only on its
// inputs.
func (r Resolver) Resolve(anchor surface.Rect, floating surface.Size, side Side, viewport surface.Rect, offset int) Placement {
	bounds := viewport.Inset(r.EdgeMargin)

	p := candidate(anchor, floating, side, offset)
	if !fitsMainAxis(p, floating, bounds) {
		p = candidate(anchor, floating, side.Opposite(), offset)
		p.Flipped = true
	}
	return clampCrossAxis(p, floating, bounds)
}

// candidate centres the box on the anchor's cross axis and pushes it offset
// cells away from the anchor along the main axis.
func candidate(anchor surface.Rect, floating surface.Size, side Side, offset int) Placement {
	p := Placement{Side: side}
	switch side {
	case Top:
		p.Top = anchor.Top() - offset - floating.Height
		p.Left = anchor.Left() + (anchor.Width-floating.Width)/2
	case Bottom:
		p.Top = anchor.Bottom() + offset
		p.Left = anchor.Left() + (anchor.Width-floating.Width)/2
	case Left:
		p.Left = anchor.Left() - offset - floating.Width
		p.Top = anchor.Top() + (anchor.Height-floating.Height)/2
	case Right:
		p.Left = anchor.Right() + offset
		p.Top = anchor.Top() + (anchor.Height-floating.Height)/2
	}
	return p
}

// fitsMainAxis only judges the main axis; cross-axis overflow is always
// repaired by clampCrossAxis and must not cause a flip.
func fitsMainAxis(p Placement, floating surface.Size, bounds surface.Rect) bool {
	if p.Side.Vertical() {
		return p.Top >= bounds.Top() && p.Top+floating.Height <= bounds.Bottom()
	}
	return p.Left >= bounds.Left() && p.Left+floating.Width <= bounds.Right()
}

func clampCrossAxis(p Placement, floating surface.Size, bounds surface.Rect) Placement {
	if p.Side.Vertical() {
		p.Left = clamp(p.Left, floating.Width, bounds.Left(), bounds.Right())
	} else {
		p.Top = clamp(p.Top, floating.Height, bounds.Top(), bounds.Bottom())
	}
	return p
}

// clamp slides [pos, pos+length) into [lo, hi) by the minimum amount. A box
// longer than the range is aligned to lo.
func clamp(pos, length, lo, hi int) int {
	if pos+length > hi {
		pos = hi - length
	}
	if pos < lo {
		pos = lo
	}
	return pos
}
