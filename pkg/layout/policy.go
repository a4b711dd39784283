package layout

import (
	"fmt"
	"strings"

	"github.com/go-drift/pane/pkg/errors"
)

// SizePolicy classifies a widget's size along one axis.
//
// A fixed widget's size is intrinsic: its parent's layout never overwrites
// it, and invalidation routing stops there. An expanding widget's size is
// handed out by its parent's layout on every pass, so changes inside it make
// the parent dirty too.
type SizePolicy uint8

const (
	PolicyFixed SizePolicy = iota
	PolicyExpanding
)

// IsFixed reports whether the size is self-determined.
func (p SizePolicy) IsFixed() bool {
	return p == PolicyFixed
}

// Validate rejects values outside the enumeration.
func (p SizePolicy) Validate() error {
	if p > PolicyExpanding {
		return errors.Config("layout.SizePolicy.Validate", fmt.Errorf("%d: %w", p, errors.ErrInvalidPolicy))
	}
	return nil
}

func (p SizePolicy) String() string {
	switch p {
	case PolicyFixed:
		return "fixed"
	case PolicyExpanding:
		return "expanding"
	default:
		return fmt.Sprintf("SizePolicy(%d)", int(p))
	}
}

// ParseSizePolicy accepts "fixed" or "expanding".
func ParseSizePolicy(s string) (SizePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fixed":
		return PolicyFixed, nil
	case "expanding":
		return PolicyExpanding, nil
	}
	return 0, errors.Config("layout.ParseSizePolicy", fmt.Errorf("%q: %w", s, errors.ErrInvalidPolicy))
}
