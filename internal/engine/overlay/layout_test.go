package overlay

import (
	"testing"
)

func TestNewLayout(t *testing.T) {
	l := NewLayout(1280, 720)

	if l.Screen != (Rect{0, 0, 1280, 720}) {
		t.Errorf("Screen = %+v, want full window", l.Screen)
	}
	if l.Yes.W != ButtonWidth || l.No.W != ButtonWidth {
		t.Errorf("button widths = %v, %v, want %d", l.Yes.W, l.No.W, ButtonWidth)
	}
	if gap := l.No.X - (l.Yes.X + l.Yes.W); gap != ButtonGap {
		t.Errorf("gap between buttons = %v, want %d", gap, ButtonGap)
	}
	if pad := l.Yes.Y - (l.Label.Y + l.Label.H); pad != LabelPadding {
		t.Errorf("padding under label = %v, want %d", pad, LabelPadding)
	}
	if l.Yes.Y != l.No.Y {
		t.Errorf("buttons not on one row: %v vs %v", l.Yes.Y, l.No.Y)
	}

	// Label and button row are centred horizontally.
	if c := l.Label.X + l.Label.W/2; c != 640 {
		t.Errorf("label centre = %v, want 640", c)
	}
	if c := (l.Yes.X + l.No.X + l.No.W) / 2; c != 640 {
		t.Errorf("button row centre = %v, want 640", c)
	}

	// The whole dialog is centred vertically.
	top, bottom := l.Label.Y, l.Yes.Y+l.Yes.H
	if top != 720-bottom {
		t.Errorf("dialog spans %v..%v, not vertically centred", top, bottom)
	}
}

func TestLayout_HitTest(t *testing.T) {
	l := NewLayout(800, 600)

	tests := []struct {
		name string
		x, y float32
		want Action
	}{
		{"yes centre", l.Yes.X + l.Yes.W/2, l.Yes.Y + l.Yes.H/2, ActionConfirmExit},
		{"yes top-left corner", l.Yes.X, l.Yes.Y, ActionConfirmExit},
		{"no centre", l.No.X + l.No.W/2, l.No.Y + l.No.H/2, ActionResume},
		{"gap between buttons", l.Yes.X + l.Yes.W + ButtonGap/2, l.Yes.Y + 1, ActionNone},
		{"label", l.Label.X + 1, l.Label.Y + 1, ActionNone},
		{"corner of screen", 0, 0, ActionNone},
		{"right edge of no is exclusive", l.No.X + l.No.W, l.No.Y + 1, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.HitTest(int(tt.x), int(tt.y)); got != tt.want {
				t.Errorf("HitTest(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}

	tests := []struct {
		x, y float32
		want bool
	}{
		{10, 20, true},
		{39.9, 59.9, true},
		{40, 30, false},
		{20, 60, false},
		{9.9, 30, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRasterize(t *testing.T) {
	img := Rasterize(YesText)

	w, h := TextSize(YesText)
	if img.Bounds().Dx() != w || img.Bounds().Dy() != h {
		t.Fatalf("image size = %v, want %dx%d", img.Bounds(), w, h)
	}
	// basicfont glyphs are 7 pixels wide.
	if w != 7*len(YesText) {
		t.Errorf("text width = %d, want %d", w, 7*len(YesText))
	}

	var lit int
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			lit++
			if img.Pix[i-3] != img.Pix[i] {
				t.Fatalf("text pixel is not white: %v", img.Pix[i-3:i+1])
			}
		}
	}
	if lit == 0 {
		t.Error("rasterized text has no visible pixels")
	}
}

func TestAction_String(t *testing.T) {
	tests := map[Action]string{
		ActionNone:        "none",
		ActionConfirmExit: "confirm-exit",
		ActionResume:      "resume",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(a), got, want)
		}
	}
}
