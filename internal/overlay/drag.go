package overlay

import (
	"craftdeck/internal/geometry"
)

// dragSession is the ephemeral record of one live drag: which overlay is
// moving, where the pointer started in absolute pixels, and where the
// overlay sat when the drag began. It exists only between Begin and End.
type dragSession struct {
	overlayID    string
	pointerStart geometry.Point
	overlayStart geometry.NormPoint
}

// DragController turns pointer motion into overlay position updates under
// a single-active-drag invariant: Idle -> Dragging -> Idle, one overlay at
// a time. A Begin while already dragging is ignored (the first drag wins),
// and End always returns to Idle no matter where the pointer was released.
type DragController struct {
	model   *Model
	session *dragSession
}

// NewDragController binds a controller to the overlay model it moves.
func NewDragController(model *Model) *DragController {
	return &DragController{model: model}
}

// Dragging reports whether a drag session is live.
func (d *DragController) Dragging() bool {
	return d.session != nil
}

// DraggingID returns the id of the overlay being dragged, or "".
func (d *DragController) DraggingID() string {
	if d.session == nil {
		return ""
	}
	return d.session.overlayID
}

// Begin starts a drag on the overlay with the given id from the pointer's
// absolute position, selecting that overlay as a side effect. It reports
// whether a new session started: false when a drag is already live or the
// id is unknown.
func (d *DragController) Begin(id string, pointer geometry.Point) bool {
	if d.session != nil {
		return false
	}
	o, ok := d.model.Get(id)
	if !ok {
		return false
	}
	d.model.Select(id)
	d.session = &dragSession{
		overlayID:    id,
		pointerStart: pointer,
		overlayStart: o.Position(),
	}
	return true
}

// Move applies a pointer-move event. The delta from the drag start is
// converted to normalized units against the container's current bounds
// (layout may have reflowed since Begin), added to the overlay's start
// position, clamped, and written to the dragged overlay only. Moves while
// Idle are ignored.
func (d *DragController) Move(pointer geometry.Point, container geometry.Bounds) {
	if d.session == nil {
		return
	}
	delta := geometry.DeltaToNormalized(geometry.Point{
		X: pointer.X - d.session.pointerStart.X,
		Y: pointer.Y - d.session.pointerStart.Y,
	}, container)
	d.model.setPosition(d.session.overlayID, d.session.overlayStart.Add(delta))
}

// End terminates the drag session unconditionally. It is safe to call in
// any state and from any release position, including outside the editable
// surface, so the controller can never be left stuck in Dragging.
func (d *DragController) End() {
	d.session = nil
}
