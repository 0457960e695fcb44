// Package scene owns the math-to-GPU handoff: the camera uniform block
// that every shader invocation reads, and the renderer that keeps the
// GPU-side copy in sync with the design view.
package scene

import (
	"encoding/binary"
	gomath "math"
	"unsafe"

	"github.com/thenlevy/ensnano-sub005/internal/engine/camera"
	"github.com/thenlevy/ensnano-sub005/pkg/math"
)

// UniformsSize is the byte size of the camera uniform block.
// The shader declares the same 80-byte std140 block; field offsets are
// pinned by the struct layout below (vec4 at 0, mat4 at 16).
const UniformsSize = 80

// Pins the layout: fails to compile if Uniforms grows padding.
var _ [UniformsSize]byte = [unsafe.Sizeof(Uniforms{})]byte{}

// Uniforms is the camera state snapshot uploaded to the GPU once per
// frame. Field order is part of the GPU contract and must not change:
//
//	offset  0: camera_position (vec4, homogeneous point, w = 1)
//	offset 16: view_proj       (mat4, column-major, projection * view)
type Uniforms struct {
	CameraPosition math.Vec4
	ViewProj       math.Mat4
}

// NewUniforms returns the pre-first-frame record: zero position and an
// identity view-projection. Used to reserve buffer space before the
// first camera snapshot.
func NewUniforms() Uniforms {
	return Uniforms{
		CameraPosition: math.Vec4{},
		ViewProj:       math.Identity(),
	}
}

// UniformsFrom snapshots the camera and projection. Each source is read
// once; the result's ViewProj is strictly projection * view.
func UniformsFrom(cam *camera.Camera, proj *camera.Projection) Uniforms {
	var u Uniforms
	u.Refresh(cam, proj)
	return u
}

// Refresh recomputes the record in place from the current camera and
// projection, keeping the backing storage at a stable address for the
// upload buffer.
func (u *Uniforms) Refresh(cam *camera.Camera, proj *camera.Projection) {
	u.CameraPosition = cam.Position.Homogeneous()
	u.ViewProj = proj.Matrix().Mul(cam.ViewMatrix())
}

// Bytes returns the record viewed as a byte slice of length
// UniformsSize, backed by the record itself. The caller must treat the
// slice as opaque POD; it stays valid for the lifetime of u.
func (u *Uniforms) Bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(u)), UniformsSize)
}

// Marshal serializes the record into a fresh little-endian buffer.
// On little-endian hosts this is byte-identical to Bytes; it exists so
// tests can pin the wire layout without trusting the in-memory view.
func (u *Uniforms) Marshal() []byte {
	buf := make([]byte, UniformsSize)
	binary.LittleEndian.PutUint32(buf[0:], gomath.Float32bits(u.CameraPosition.X))
	binary.LittleEndian.PutUint32(buf[4:], gomath.Float32bits(u.CameraPosition.Y))
	binary.LittleEndian.PutUint32(buf[8:], gomath.Float32bits(u.CameraPosition.Z))
	binary.LittleEndian.PutUint32(buf[12:], gomath.Float32bits(u.CameraPosition.W))
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[16+i*4:], gomath.Float32bits(u.ViewProj[i]))
	}
	return buf
}
