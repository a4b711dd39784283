package layout

import (
	"fmt"
	"strings"

	"github.com/go-drift/pane/pkg/errors"
	"github.com/go-drift/pane/pkg/graphics"
)

// Axis is a set of layout axes. Mutations that only affect one dimension
// pass that axis so invalidation routing consults the matching policy.
type Axis uint8

const (
	AxisHorizontal Axis = 1 << iota
	AxisVertical

	// AxisBoth checks both policies.
	AxisBoth = AxisHorizontal | AxisVertical
)

// Validate rejects the empty set and unknown bits.
func (a Axis) Validate() error {
	if a == 0 || a&^AxisBoth != 0 {
		return errors.Config("layout.Axis.Validate", fmt.Errorf("%d: %w", a, errors.ErrInvalidAxis))
	}
	return nil
}

// Has reports whether a includes every axis in other.
func (a Axis) Has(other Axis) bool {
	return a&other == other
}

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	case AxisBoth:
		return "both"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// cross returns the other single axis.
func (a Axis) cross() Axis {
	if a == AxisHorizontal {
		return AxisVertical
	}
	return AxisHorizontal
}

// extent returns the dimension of s along a single axis.
func extent(s graphics.Size, a Axis) float64 {
	if a == AxisHorizontal {
		return s.Width
	}
	return s.Height
}

func withExtent(s graphics.Size, a Axis, v float64) graphics.Size {
	if a == AxisHorizontal {
		s.Width = v
	} else {
		s.Height = v
	}
	return s
}

func coord(o graphics.Offset, a Axis) float64 {
	if a == AxisHorizontal {
		return o.X
	}
	return o.Y
}

func withCoord(o graphics.Offset, a Axis, v float64) graphics.Offset {
	if a == AxisHorizontal {
		o.X = v
	} else {
		o.Y = v
	}
	return o
}

// Extent returns the dimension of s along a single axis.
func (a Axis) Extent(s graphics.Size) float64 {
	return extent(s, a)
}

// Coord returns the component of o along a single axis.
func (a Axis) Coord(o graphics.Offset) float64 {
	return coord(o, a)
}

// WithCoord returns o with its component along a single axis replaced.
func (a Axis) WithCoord(o graphics.Offset, v float64) graphics.Offset {
	return withCoord(o, a, v)
}

// Orientation is the direction of a box layout or slider track.
type Orientation uint8

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

// Axis returns the single axis the orientation runs along.
func (o Orientation) Axis() Axis {
	if o == OrientationVertical {
		return AxisVertical
	}
	return AxisHorizontal
}

// Validate rejects values outside the enumeration.
func (o Orientation) Validate() error {
	if o > OrientationVertical {
		return errors.Config("layout.Orientation.Validate", fmt.Errorf("%d: %w", o, errors.ErrInvalidOrientation))
	}
	return nil
}

func (o Orientation) String() string {
	switch o {
	case OrientationHorizontal:
		return "horizontal"
	case OrientationVertical:
		return "vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// ParseOrientation accepts "horizontal" or "vertical", case-insensitively.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal":
		return OrientationHorizontal, nil
	case "vertical":
		return OrientationVertical, nil
	}
	return 0, errors.Config("layout.ParseOrientation", fmt.Errorf("%q: %w", s, errors.ErrInvalidOrientation))
}

// Alignment positions a child inside the free space on one axis.
type Alignment uint8

const (
	AlignLeading Alignment = iota
	AlignCenter
	AlignTrailing
)

// Validate rejects values outside the enumeration.
func (a Alignment) Validate() error {
	if a > AlignTrailing {
		return errors.Config("layout.Alignment.Validate", fmt.Errorf("%d: %w", a, errors.ErrInvalidAlignment))
	}
	return nil
}

func (a Alignment) String() string {
	switch a {
	case AlignLeading:
		return "leading"
	case AlignCenter:
		return "center"
	case AlignTrailing:
		return "trailing"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// ParseAlignment accepts "leading", "center" or "trailing".
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "leading":
		return AlignLeading, nil
	case "center":
		return AlignCenter, nil
	case "trailing":
		return AlignTrailing, nil
	}
	return 0, errors.Config("layout.ParseAlignment", fmt.Errorf("%q: %w", s, errors.ErrInvalidAlignment))
}

// offset returns the leading offset that aligns content within free space.
func (a Alignment) offset(free float64) float64 {
	switch a {
	case AlignCenter:
		return free * 0.5
	case AlignTrailing:
		return free
	default:
		return 0
	}
}
