package design

import (
	"github.com/thenlevy/ensnano-sub005/internal/engine/camera"
	"github.com/thenlevy/ensnano-sub005/pkg/math"
)

// Controller translates pointer-drag input into design pose updates.
//
// Drags arrive as cumulative world-space offsets from the drag-start
// frame, not as per-frame increments. The controller therefore
// snapshots the view's pose when a drag starts and expresses every
// Translate call relative to that snapshot: the drag's total
// displacement is exactly the last right + up received, independent of
// how many intermediate events fired or were dropped.
type Controller struct {
	view *View
	data *Data
	cam  *camera.Camera

	// Pose captured at drag start. Translations and rotations are
	// always applied to these, never to the live (already-moved) pose.
	oldPosition math.Vec3
	oldMatrix   math.Mat4
	oldRotation math.Rotor

	moving bool
}

// NewController creates a controller over the given view and data.
// The camera handle supplies the orientation snapshot for rotation
// drags.
func NewController(view *View, data *Data, cam *camera.Camera) *Controller {
	return &Controller{
		view:      view,
		data:      data,
		cam:       cam,
		oldMatrix: math.Identity(),
	}
}

// Update snapshots the current view origin and camera orientation.
// Call at drag start (mouse-down).
func (c *Controller) Update() {
	c.oldMatrix = c.view.ModelMatrix()
	c.oldPosition = c.oldMatrix.Origin()
	if c.cam != nil {
		c.oldRotation = c.cam.Rotation
	}
	c.moving = true
}

// Translate moves the design origin to snapshot + right + up. Each call
// is authoritative on the absolute position; it never accumulates onto
// a previous Translate.
func (c *Controller) Translate(right, up math.Vec3) {
	target := c.oldPosition.Add(right).Add(up)
	c.view.SetMatrix(c.oldMatrix.WithOrigin(target))
}

// Rotate applies a rotation around a world-space origin to the
// snapshotted pose. Like Translate it is absolute with respect to the
// drag-start snapshot, so repeated calls with growing angles do not
// compound.
func (c *Controller) Rotate(rotation math.Rotor, origin math.Vec3) {
	m := math.Translation(origin).
		Mul(rotation.ToMat4()).
		Mul(math.Translation(origin.Neg())).
		Mul(c.oldMatrix)
	c.view.SetMatrix(m)
}

// IsMoving reports whether a drag snapshot is active, i.e. Update was
// called and the movement has not been terminated.
func (c *Controller) IsMoving() bool {
	return c.moving
}

// TerminateMovement commits the drag: the current pose becomes the next
// snapshot and the data layer is notified.
func (c *Controller) TerminateMovement() {
	c.oldMatrix = c.view.ModelMatrix()
	c.oldPosition = c.oldMatrix.Origin()
	c.moving = false
	if c.data != nil {
		c.data.TerminateMovement()
	}
}
