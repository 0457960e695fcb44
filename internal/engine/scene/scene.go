package scene

import (
	"fmt"
	gomath "math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/thenlevy/ensnano-sub005/internal/design"
	"github.com/thenlevy/ensnano-sub005/internal/engine/camera"
	"github.com/thenlevy/ensnano-sub005/internal/engine/shader"
	"github.com/thenlevy/ensnano-sub005/internal/logger"
)

// cameraBlockBinding is the uniform buffer binding point of the camera
// block, shared by every pipeline drawing the design.
const cameraBlockBinding = 0

// Scene draws the design. It owns the GPU-side copy of the camera
// uniforms and polls the design view's dirty flag once per frame; it is
// the single consumer of that flag.
type Scene struct {
	cam  *camera.Camera
	proj *camera.Projection
	view *design.View

	uniforms Uniforms

	program  uint32
	ubo      uint32
	locModel int32

	helixVAO   uint32
	helixVBO   uint32
	helixVerts int32
}

// New creates a scene rendering the design seen by view through cam and
// proj. Must be called with a live OpenGL context.
func New(cam *camera.Camera, proj *camera.Projection, view *design.View) (*Scene, error) {
	s := &Scene{
		cam:      cam,
		proj:     proj,
		view:     view,
		uniforms: NewUniforms(),
	}

	var err error
	s.program, err = createProgram()
	if err != nil {
		return nil, fmt.Errorf("design program: %w", err)
	}

	// Reserve the uniform buffer before the first frame; the default
	// record keeps the shader well-defined until the first refresh.
	gl.GenBuffers(1, &s.ubo)
	gl.BindBuffer(gl.UNIFORM_BUFFER, s.ubo)
	gl.BufferData(gl.UNIFORM_BUFFER, UniformsSize, gl.Ptr(s.uniforms.Bytes()), gl.DYNAMIC_DRAW)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, cameraBlockBinding, s.ubo)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)

	blockIndex := gl.GetUniformBlockIndex(s.program, gl.Str("Camera\x00"))
	gl.UniformBlockBinding(s.program, blockIndex, cameraBlockBinding)
	s.locModel = shader.GetUniform(s.program, "model")

	s.createHelix()

	logger.Debug("scene created",
		zap.Uint32("program", s.program),
		zap.Uint32("ubo", s.ubo),
	)
	return s, nil
}

// Update runs the per-frame poll: if the design view changed since the
// last frame, the camera uniforms are rebuilt from the current camera
// and projection and uploaded. Returns true if anything was uploaded.
func (s *Scene) Update() bool {
	if !s.view.WasUpdated() {
		return false
	}
	s.uniforms.Refresh(s.cam, s.proj)
	gl.BindBuffer(gl.UNIFORM_BUFFER, s.ubo)
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, UniformsSize, gl.Ptr(s.uniforms.Bytes()))
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
	return true
}

// Draw renders the design with its current model matrix.
func (s *Scene) Draw() {
	gl.UseProgram(s.program)

	model := s.view.ModelMatrix()
	gl.UniformMatrix4fv(s.locModel, 1, false, model.Ptr())

	gl.BindVertexArray(s.helixVAO)
	gl.DrawArrays(gl.LINE_STRIP, 0, s.helixVerts)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// Close releases GPU resources.
func (s *Scene) Close() {
	if s.helixVAO != 0 {
		gl.DeleteVertexArrays(1, &s.helixVAO)
	}
	if s.helixVBO != 0 {
		gl.DeleteBuffers(1, &s.helixVBO)
	}
	if s.ubo != 0 {
		gl.DeleteBuffers(1, &s.ubo)
	}
	if s.program != 0 {
		gl.DeleteProgram(s.program)
	}
}

// createHelix builds a placeholder double-helix backbone so there is
// something to see before a design is loaded.
func (s *Scene) createHelix() {
	const turns = 4
	const perTurn = 24
	const rise = float32(0.34) // nm per base pair, scaled up
	const radius = float32(1.0)

	var verts []float32
	for strand := 0; strand < 2; strand++ {
		phase := float32(strand) * gomath.Pi
		for i := 0; i <= turns*perTurn; i++ {
			a := float64(2*gomath.Pi*float32(i)/perTurn + phase)
			x := radius * float32(gomath.Cos(a))
			z := radius * float32(gomath.Sin(a))
			y := rise*float32(i) - rise*turns*perTurn/2
			verts = append(verts, x, y, z)
		}
	}
	s.helixVerts = int32(len(verts) / 3)

	gl.GenVertexArrays(1, &s.helixVAO)
	gl.BindVertexArray(s.helixVAO)
	gl.GenBuffers(1, &s.helixVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.helixVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
}

func createProgram() (uint32, error) {
	vertexSource := `
		#version 410 core

		layout(std140) uniform Camera {
			vec4 camera_position;
			mat4 view_proj;
		};

		uniform mat4 model;

		layout (location = 0) in vec3 aPos;

		out float vDepth;

		void main() {
			vec4 world = model * vec4(aPos, 1.0);
			vDepth = length(world.xyz - camera_position.xyz);
			gl_Position = view_proj * world;
		}
	`

	fragmentSource := `
		#version 410 core

		in float vDepth;
		out vec4 FragColor;

		void main() {
			float fade = clamp(1.0 - vDepth / 60.0, 0.2, 1.0);
			FragColor = vec4(0.35 * fade, 0.65 * fade, 0.95 * fade, 1.0);
		}
	`

	return shader.CompileProgram(vertexSource, fragmentSource)
}

