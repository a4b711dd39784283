// Package widgets provides composite widgets built on the layout package.
//
// Containers are created with a [Box] literal or the NewHBox, NewVBox and
// NewPanel helpers. Fields left at their zero value take the theme's box
// defaults:
//
//	row, err := widgets.Box{
//	    Name:    "toolbar",
//	    Kind:    layout.KindHBox,
//	    Spacing: 8,
//	    HPolicy: layout.PolicyExpanding,
//	}.Build(widgets.NewFixed("icon", 24, 24), widgets.NewSpacer("gap"))
//
// [Slider] is the reference client of the policy protocol. Its constructor
// assigns policies and layouts to the children it owns, it moves its
// handle under a bypass so pointer input never triggers a re-layout, and
// its value is derived from the handle's position along the track.
package widgets
