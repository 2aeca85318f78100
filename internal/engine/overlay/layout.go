// Package overlay draws the pause dialog on top of the world.
package overlay

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Dialog text.
const (
	LabelText = "Are you sure you want to exit?"
	YesText   = "Yes"
	NoText    = "No"
)

// Dialog metrics in window pixels.
const (
	TextScale     = 2
	ButtonWidth   = 100
	ButtonHeight  = 40
	ButtonGap     = 20
	LabelPadding  = 20
	BackdropAlpha = 0.7
)

var face = basicfont.Face7x13

// Action is what a click on the dialog asks for.
type Action int

const (
	ActionNone Action = iota
	ActionConfirmExit
	ActionResume
)

func (a Action) String() string {
	switch a {
	case ActionConfirmExit:
		return "confirm-exit"
	case ActionResume:
		return "resume"
	default:
		return "none"
	}
}

// Rect is an axis-aligned rectangle with its origin at the top-left.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether (x, y) lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout holds the dialog rectangles for one window size.
type Layout struct {
	Screen Rect
	Label  Rect
	Yes    Rect
	No     Rect
}

// NewLayout centres the dialog in a width x height window: the label on top,
// then Yes and No side by side.
func NewLayout(width, height int) Layout {
	lw, lh := TextSize(LabelText)
	labelW := float32(lw * TextScale)
	labelH := float32(lh * TextScale)

	rowW := float32(2*ButtonWidth + ButtonGap)
	totalH := labelH + LabelPadding + ButtonHeight

	cx := float32(width) / 2
	top := (float32(height) - totalH) / 2
	buttonsY := top + labelH + LabelPadding

	return Layout{
		Screen: Rect{0, 0, float32(width), float32(height)},
		Label:  Rect{cx - labelW/2, top, labelW, labelH},
		Yes:    Rect{cx - rowW/2, buttonsY, ButtonWidth, ButtonHeight},
		No:     Rect{cx - rowW/2 + ButtonWidth + ButtonGap, buttonsY, ButtonWidth, ButtonHeight},
	}
}

// HitTest maps a click in window coordinates to an action.
func (l Layout) HitTest(x, y int) Action {
	fx, fy := float32(x), float32(y)
	switch {
	case l.Yes.Contains(fx, fy):
		return ActionConfirmExit
	case l.No.Contains(fx, fy):
		return ActionResume
	default:
		return ActionNone
	}
}

// TextSize returns the unscaled pixel size of s in the overlay font.
func TextSize(s string) (int, int) {
	return font.MeasureString(face, s).Ceil(), face.Metrics().Height.Ceil()
}

// Rasterize draws s in white on a transparent image sized by TextSize.
func Rasterize(s string) *image.RGBA {
	w, h := TextSize(s)
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
	return img
}

