// Package renderer draws the block world with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/voxelwalk/internal/engine/lighting"
	"github.com/Faultbox/voxelwalk/internal/engine/shader"
	"github.com/Faultbox/voxelwalk/internal/game/world"
	"github.com/Faultbox/voxelwalk/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	FOV    float32 // degrees
	Near   float32
	Far    float32
}

// SkyColor is the clear colour.
var SkyColor = mgl32.Vec4{0.5, 0.7, 1.0, 1.0}

const blockVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aUV;

uniform mat4 uViewProj;

out vec3 vNormal;
out vec2 vUV;

void main() {
	vNormal = aNormal;
	vUV = aUV;
	gl_Position = uViewProj * vec4(aPos, 1.0);
}
`

const blockFragmentShader = `
#version 410 core

in vec3 vNormal;
in vec2 vUV;

uniform sampler2D uTexture;
uniform vec3 uAmbient;
uniform vec3 uSunDir;
uniform vec3 uSunColor;

out vec4 FragColor;

void main() {
	float diffuse = max(dot(normalize(vNormal), -normalize(uSunDir)), 0.0);
	vec3 light = uAmbient + uSunColor * diffuse;
	FragColor = vec4(texture(uTexture, vUV).rgb * light, 1.0);
}
`

// batch is one static vertex buffer per material.
type batch struct {
	vao     uint32
	vbo     uint32
	count   int32
	texture uint32
}

// Renderer handles all world rendering.
type Renderer struct {
	config   Config
	lighting lighting.Environment
	program  *shader.Program
	batches []*batch
}

// New creates a new renderer.
// Must be called after the OpenGL context is created.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		lighting: lighting.Default(),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.ClearColor(SkyColor[0], SkyColor[1], SkyColor[2], SkyColor[3])

	var err error
	r.program, err = shader.New(blockVertexShader, blockFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create block shader: %w", err)
	}

	return r, nil
}

// SetWorld uploads one vertex batch per material. textures maps each material to
// a GL texture id; materials without a texture are not drawn.
func (r *Renderer) SetWorld(blocks []world.Block, textures map[world.Material]uint32) {
	r.deleteBatches()

	for _, mat := range world.Materials {
		tex, ok := textures[mat]
		if !ok {
			continue
		}
		vertices := BuildBatch(blocks, mat)
		if len(vertices) == 0 {
			continue
		}

		b := &batch{
			count:   int32(len(vertices) / FloatsPerVertex),
			texture: tex,
		}
		gl.GenVertexArrays(1, &b.vao)
		gl.BindVertexArray(b.vao)

		gl.GenBuffers(1, &b.vbo)
		gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

		gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)
		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride, 3*4)
		gl.EnableVertexAttribArray(1)
		gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, vertexStride, 6*4)
		gl.EnableVertexAttribArray(2)

		gl.BindBuffer(gl.ARRAY_BUFFER, 0)
		gl.BindVertexArray(0)

		r.batches = append(r.batches, b)
		logger.Debug("block batch uploaded",
			zap.Stringer("material", mat),
			zap.Int32("vertices", b.count),
		)
	}
}

// Resize handles window resize. Sizes are drawable pixels.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Draw clears the frame and draws every batch from the camera's point of view.
func (r *Renderer) Draw(cam Camera) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	proj := Projection(r.config.FOV, r.config.Width, r.config.Height, r.config.Near, r.config.Far)

	r.program.Use()
	r.program.SetMat4("uViewProj", proj.Mul4(cam.View()))
	r.program.SetVec3("uAmbient", r.lighting.Ambient)
	r.program.SetVec3("uSunDir", r.lighting.SunDirection.Normalize())
	r.program.SetVec3("uSunColor", r.lighting.SunColor)
	r.program.SetInt("uTexture", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	for _, b := range r.batches {
		gl.BindTexture(gl.TEXTURE_2D, b.texture)
		gl.BindVertexArray(b.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, b.count)
	}
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (r *Renderer) deleteBatches() {
	for _, b := range r.batches {
		gl.DeleteVertexArrays(1, &b.vao)
		gl.DeleteBuffers(1, &b.vbo)
	}
	r.batches = nil
}

// Close cleans up renderer resources. Textures belong to the caller.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.deleteBatches()
	if r.program != nil {
		r.program.Delete()
	}
}
