// Package design holds the designed structure's presentation state: the
// model matrix of the design, a change flag for the renderer, and the
// controller that turns pointer drags into pose updates.
package design

import (
	"github.com/thenlevy/ensnano-sub005/pkg/math"
)

// View stores the design's model matrix and announces changes to
// exactly one consumer, the scene renderer. The flag is edge-triggered:
// any setter arms it, WasUpdated consumes it. It starts armed so the
// first frame always uploads.
type View struct {
	modelMatrix math.Mat4
	wasUpdated  bool
}

// NewView returns a view with an identity model matrix, marked updated.
func NewView() *View {
	return &View{
		modelMatrix: math.Identity(),
		wasUpdated:  true,
	}
}

// WasUpdated reports whether the view changed since the last call, and
// clears the flag. Only the renderer may call this; a second consumer
// would steal the edge.
func (v *View) WasUpdated() bool {
	ret := v.wasUpdated
	v.wasUpdated = false
	return ret
}

// SetMatrix replaces the model matrix and arms the change flag.
func (v *View) SetMatrix(m math.Mat4) {
	v.modelMatrix = m
	v.wasUpdated = true
}

// ModelMatrix returns the current model matrix. Does not touch the flag.
func (v *View) ModelMatrix() math.Mat4 {
	return v.modelMatrix
}

// Origin returns the design's world-space origin, the translation
// column of the model matrix.
func (v *View) Origin() math.Vec3 {
	return v.modelMatrix.Origin()
}
