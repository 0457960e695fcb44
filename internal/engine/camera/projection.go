package camera

import (
	"github.com/thenlevy/ensnano-sub005/pkg/math"
)

// Projection holds the parameters of the camera-to-clip transform.
type Projection struct {
	aspect float32
	fovy   float32 // radians
	znear  float32
	zfar   float32
}

// NewProjection creates a projection for a viewport of width x height pixels.
func NewProjection(width, height uint32, fovy, znear, zfar float32) *Projection {
	return &Projection{
		aspect: float32(width) / float32(height),
		fovy:   fovy,
		znear:  znear,
		zfar:   zfar,
	}
}

// Resize updates the aspect ratio after a viewport resize.
func (p *Projection) Resize(width, height uint32) {
	p.aspect = float32(width) / float32(height)
}

// Matrix computes the projection matrix.
func (p *Projection) Matrix() math.Mat4 {
	return math.Perspective(p.fovy, p.aspect, p.znear, p.zfar)
}

// FovY returns the vertical field of view in radians.
func (p *Projection) FovY() float32 {
	return p.fovy
}

// Ratio returns the aspect ratio.
func (p *Projection) Ratio() float32 {
	return p.aspect
}
