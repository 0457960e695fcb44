package design

// Data is the application-side design content the controller also
// notifies. The editing layer owns its real contents; here it carries
// the identity of the loaded design and a movement revision so
// collaborators can tell committed poses apart from in-flight drags.
type Data struct {
	name       string
	revision   uint64
	wasUpdated bool
}

// NewData returns an empty design.
func NewData(name string) *Data {
	return &Data{name: name}
}

// Name returns the design's display name.
func (d *Data) Name() string {
	return d.name
}

// Revision returns the number of committed movements.
func (d *Data) Revision() uint64 {
	return d.revision
}

// TerminateMovement commits the movement in progress. Called by the
// controller when a drag ends.
func (d *Data) TerminateMovement() {
	d.revision++
	d.wasUpdated = true
}

// WasUpdated reports whether the data changed since the last call, and
// clears the flag. Single consumer, like View.WasUpdated.
func (d *Data) WasUpdated() bool {
	ret := d.wasUpdated
	d.wasUpdated = false
	return ret
}
