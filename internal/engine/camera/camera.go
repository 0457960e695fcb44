// Package camera holds the logical camera and the projection that the
// scene's uniform pipeline reads from. Both are shared, single-writer
// handles mutated only on the UI thread.
package camera

import (
	gomath "math"

	"github.com/thenlevy/ensnano-sub005/pkg/math"
)

// Default rig used at window init.
const (
	DefaultFovY  = float32(70.0 * gomath.Pi / 180.0)
	DefaultZNear = 0.1
	DefaultZFar  = 1000.0
)

// DefaultPosition is the camera eye at startup.
var DefaultPosition = math.Vec3{X: 0, Y: 5, Z: 10}

// Camera is the eye of the scene. The rotor maps the world basis into
// the camera's basis; the camera looks down the negative z axis of its
// own basis with y pointing up.
type Camera struct {
	Position math.Vec3
	Rotation math.Rotor
}

// New creates a camera at position with the given orientation.
func New(position math.Vec3, rotation math.Rotor) *Camera {
	return &Camera{Position: position, Rotation: rotation}
}

// Direction returns the camera's viewing direction in world coordinates.
func (c *Camera) Direction() math.Vec3 {
	return c.Rotation.Conjugate().Rotate(math.Vec3{Z: -1})
}

// RightVec returns the camera's right vector in world coordinates.
func (c *Camera) RightVec() math.Vec3 {
	return c.Rotation.Conjugate().Rotate(math.UnitX())
}

// UpVec returns the camera's up vector in world coordinates.
func (c *Camera) UpVec() math.Vec3 {
	return c.RightVec().Cross(c.Direction())
}

// ViewMatrix returns the world-to-camera transform.
func (c *Camera) ViewMatrix() math.Mat4 {
	at := c.Position.Add(c.Direction())
	return math.LookAt(c.Position, at, c.UpVec())
}
