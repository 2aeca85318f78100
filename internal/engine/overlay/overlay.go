package overlay

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/voxelwalk/internal/engine/shader"
	"github.com/Faultbox/voxelwalk/internal/engine/texture"
	"github.com/Faultbox/voxelwalk/internal/logger"
)

// Colors.
var (
	BackdropColor = mgl32.Vec4{0, 0, 0, BackdropAlpha}
	ButtonColor   = mgl32.Vec4{0.25, 0.25, 0.25, 0.9}
	TextColor     = mgl32.Vec4{1, 1, 1, 1}
)

const quadVertexShader = `
#version 410 core

layout (location = 0) in vec2 aPos;

uniform mat4 uProjection;
uniform vec4 uRect;

out vec2 vUV;

void main() {
	vUV = aPos;
	gl_Position = uProjection * vec4(uRect.xy + aPos * uRect.zw, 0.0, 1.0);
}
`

const quadFragmentShader = `
#version 410 core

in vec2 vUV;

uniform vec4 uColor;
uniform int uTextured;
uniform sampler2D uTexture;

out vec4 FragColor;

void main() {
	vec4 color = uColor;
	if (uTextured == 1) {
		color *= texture(uTexture, vUV);
	}
	FragColor = color;
}
`

// Unit quad, two triangles.
var unitQuad = []float32{
	0, 0, 1, 0, 1, 1,
	0, 0, 1, 1, 0, 1,
}

type label struct {
	texture uint32
	width   float32
	height  float32
}

func newLabel(s string) label {
	img := Rasterize(s)
	b := img.Bounds()
	return label{
		texture: texture.Upload(img),
		width:   float32(b.Dx() * TextScale),
		height:  float32(b.Dy() * TextScale),
	}
}

// Overlay renders the pause dialog.
type Overlay struct {
	program *shader.Program
	vao     uint32
	vbo     uint32

	layout Layout

	question label
	yes      label
	no       label
}

// New creates the overlay for a window of the given size in window coordinates.
// Must be called after the OpenGL context is created.
func New(width, height int) (*Overlay, error) {
	o := &Overlay{layout: NewLayout(width, height)}

	var err error
	o.program, err = shader.New(quadVertexShader, quadFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("create overlay shader: %w", err)
	}

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(unitQuad)*4, gl.Ptr(unitQuad), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	o.question = newLabel(LabelText)
	o.yes = newLabel(YesText)
	o.no = newLabel(NoText)

	return o, nil
}

// Resize recomputes the layout. Sizes are window coordinates, matching mouse events.
func (o *Overlay) Resize(width, height int) {
	o.layout = NewLayout(width, height)
	logger.Debug("overlay resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Layout returns the current dialog layout.
func (o *Overlay) Layout() Layout {
	return o.layout
}

// Draw renders the backdrop, question and buttons over the current frame.
func (o *Overlay) Draw() {
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	l := o.layout
	o.program.Use()
	o.program.SetMat4("uProjection", mgl32.Ortho(0, l.Screen.W, l.Screen.H, 0, -1, 1))
	o.program.SetInt("uTexture", 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(o.vao)

	o.fill(l.Screen, BackdropColor)
	o.text(o.question, l.Label)

	o.fill(l.Yes, ButtonColor)
	o.text(o.yes, l.Yes)
	o.fill(l.No, ButtonColor)
	o.text(o.no, l.No)

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.Disable(gl.BLEND)
}

func (o *Overlay) fill(r Rect, color mgl32.Vec4) {
	o.program.SetInt("uTextured", 0)
	o.program.SetVec4("uColor", color)
	o.program.SetVec4("uRect", mgl32.Vec4{r.X, r.Y, r.W, r.H})
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// text draws lbl centred in r.
func (o *Overlay) text(lbl label, r Rect) {
	x := r.X + (r.W-lbl.width)/2
	y := r.Y + (r.H-lbl.height)/2

	o.program.SetInt("uTextured", 1)
	o.program.SetVec4("uColor", TextColor)
	o.program.SetVec4("uRect", mgl32.Vec4{x, y, lbl.width, lbl.height})
	gl.BindTexture(gl.TEXTURE_2D, lbl.texture)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// Close releases overlay resources.
func (o *Overlay) Close() {
	for _, lbl := range []label{o.question, o.yes, o.no} {
		texture.Delete(lbl.texture)
	}
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
	}
	if o.vbo != 0 {
		gl.DeleteBuffers(1, &o.vbo)
	}
	if o.program != nil {
		o.program.Delete()
	}
}
