// Package input turns SDL2 events into per-frame input snapshots.
package input

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// Bindings names the scancodes used for movement and pause, e.g. "W" or "Escape".
type Bindings struct {
	Forward string
	Back    string
	Left    string
	Right   string
	Pause   string
}

// Frame is the input collected during one frame.
type Frame struct {
	DT float32 // seconds since the previous frame

	// Relative mouse motion in pixels.
	MouseDX float32
	MouseDY float32

	// Movement keys held at the end of the frame.
	Forward bool
	Back    bool
	Left    bool
	Right   bool

	// PauseToggled is set once per physical key press; auto-repeat is ignored.
	PauseToggled bool
	Quit         bool

	// Clicked reports a left button press at (ClickX, ClickY) in window coordinates.
	Clicked bool
	ClickX  int
	ClickY  int

	// Resized reports a window size change in window coordinates.
	Resized bool
	Width   int
	Height  int
}

// Input handles all input processing.
type Input struct {
	forward sdl.Scancode
	back    sdl.Scancode
	left    sdl.Scancode
	right   sdl.Scancode
	pause   sdl.Scancode
}

// New resolves the key bindings. Unknown key names are an error.
func New(b Bindings) (*Input, error) {
	i := &Input{}
	for _, bind := range []struct {
		name string
		dst  *sdl.Scancode
	}{
		{b.Forward, &i.forward},
		{b.Back, &i.back},
		{b.Left, &i.left},
		{b.Right, &i.right},
		{b.Pause, &i.pause},
	} {
		code := sdl.GetScancodeFromName(bind.name)
		if code == sdl.SCANCODE_UNKNOWN {
			return nil, fmt.Errorf("unknown key name %q", bind.name)
		}
		*bind.dst = code
	}
	return i, nil
}

// Poll drains the SDL event queue and samples the keyboard.
func (i *Input) Poll(dt float32) Frame {
	f := Frame{DT: dt}
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		i.handle(&f, event)
	}
	i.sampleKeys(&f, sdl.GetKeyboardState())
	return f
}

func (i *Input) handle(f *Frame, event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		f.Quit = true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			f.Resized = true
			f.Width = int(e.Data1)
			f.Height = int(e.Data2)
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Repeat == 0 && e.Keysym.Scancode == i.pause {
			f.PauseToggled = !f.PauseToggled
		}

	case *sdl.MouseMotionEvent:
		f.MouseDX += float32(e.XRel)
		f.MouseDY += float32(e.YRel)

	case *sdl.MouseButtonEvent:
		if e.Type == sdl.MOUSEBUTTONDOWN && e.Button == sdl.BUTTON_LEFT {
			f.Clicked = true
			f.ClickX = int(e.X)
			f.ClickY = int(e.Y)
		}
	}
}

// sampleKeys reads held movement keys from an SDL keyboard state array.
func (i *Input) sampleKeys(f *Frame, state []uint8) {
	held := func(code sdl.Scancode) bool {
		return int(code) < len(state) && state[code] != 0
	}
	f.Forward = held(i.forward)
	f.Back = held(i.back)
	f.Left = held(i.left)
	f.Right = held(i.right)
}
