package layout

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/pane/pkg/errors"
)

func TestAxisValidate(t *testing.T) {
	assert.NoError(t, AxisHorizontal.Validate())
	assert.NoError(t, AxisVertical.Validate())
	assert.NoError(t, AxisBoth.Validate())

	for _, bad := range []Axis{0, 4, 7} {
		err := bad.Validate()
		require.Error(t, err, "Axis(%d)", bad)
		assert.True(t, stderrors.Is(err, errors.ErrInvalidAxis))
	}
}

func TestRouteInvalidationRejectsBadAxis(t *testing.T) {
	ws := chain(t, "a")
	err := ws[1].RouteInvalidation(Axis(0))
	require.Error(t, err)
	assert.True(t, ws[1].IsValid(), "nothing is marked when the axis is rejected")
}

func TestParseOrientation(t *testing.T) {
	o, err := ParseOrientation("VERTICAL")
	require.NoError(t, err)
	assert.Equal(t, OrientationVertical, o)
	assert.Equal(t, AxisVertical, o.Axis())

	_, err = ParseOrientation("diagonal")
	assert.True(t, stderrors.Is(err, errors.ErrInvalidOrientation))
	assert.Error(t, Orientation(9).Validate())
}

func TestParseAlignment(t *testing.T) {
	for in, want := range map[string]Alignment{
		"leading":  AlignLeading,
		"center":   AlignCenter,
		"trailing": AlignTrailing,
	} {
		got, err := ParseAlignment(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, in, got.String())
	}

	_, err := ParseAlignment("middle")
	assert.True(t, stderrors.Is(err, errors.ErrInvalidAlignment))
}

func TestAlignmentOffset(t *testing.T) {
	assert.Equal(t, 0.0, AlignLeading.offset(40))
	assert.Equal(t, 20.0, AlignCenter.offset(40))
	assert.Equal(t, 40.0, AlignTrailing.offset(40))
}
