package resize

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/dockyard/internal/geometry"
	"github.com/bnema/dockyard/internal/logging"
)

// Dimensions at or above this are treated as unbounded maximums.
const unboundedExtent = 1 << 24

// allHandlersDisabled is the process-wide kill switch. It is toggled by the
// hosting application around states that cannot tolerate edge resizing
// (e.g. a client-side dock drag) and read synchronously on the UI thread.
var allHandlersDisabled bool

// SetAllHandlersDisabled toggles the process-wide kill switch. While set,
// every handler and the native bridge report "not handled".
func SetAllHandlersDisabled(disabled bool) {
	allHandlersDisabled = disabled
}

// AllHandlersDisabled reports the kill-switch state.
func AllHandlersDisabled() bool {
	return allHandlersDisabled
}

// Target is the window a Handler resizes. Geometry is in global
// coordinates; a zero max-size dimension means unbounded.
type Target interface {
	Geometry() geometry.Rect
	SetGeometry(geometry.Rect)
	MinSize() geometry.Size
	MaxSize() geometry.Size
	Maximized() bool

	SetCursor(Cursor)
	RestoreCursor()

	// ReleaseGrabs drops any pointer/keyboard grab taken for the drag.
	ReleaseGrabs()
}

// Handler drives live geometry changes for one window from pointer events.
// States: idle, armed (press recorded on a zone), dragging (moves arrive
// with the button held). While the window is maximized everything is
// suppressed.
type Handler struct {
	target   Target
	zone     geometry.Zone
	pressPos geometry.Point
	resizing bool

	logger zerolog.Logger
}

// NewHandler creates a resize handler for the target window.
func NewHandler(ctx context.Context, target Target) *Handler {
	ctx = logging.WithComponent(ctx, "resize-handler")
	return &Handler{
		target: target,
		logger: *logging.FromContext(ctx),
	}
}

// Dragging reports whether a resize drag is in progress.
func (h *Handler) Dragging() bool { return h.resizing }

// Zone returns the zone captured by the last qualifying press.
func (h *Handler) Zone() geometry.Zone { return h.zone }

// HandlePress arms the handler when a primary-button press lands in a
// resize zone. Returns whether the event was consumed.
func (h *Handler) HandlePress(globalPos geometry.Point, primary bool) bool {
	if allHandlersDisabled || h.target.Maximized() {
		return false
	}
	zone := Classify(h.target.Geometry(), globalPos)
	if zone == geometry.ZoneUndefined {
		return false
	}
	if !h.target.Geometry().Expanded(Margin).Contains(globalPos) {
		return false
	}
	if primary {
		h.resizing = true
	}
	h.pressPos = globalPos
	h.zone = zone
	h.logger.Debug().Str("zone", zone.String()).Msg("resize armed")
	return true
}

// HandleRelease ends any drag on a primary-button release and drops the
// grabs.
func (h *Handler) HandleRelease(primary bool) bool {
	if allHandlersDisabled || h.target.Maximized() {
		return false
	}
	if !primary {
		return false
	}
	h.resizing = false
	h.target.ReleaseGrabs()
	return true
}

// HandleMove updates the hover cursor while no drag is active, or
// recomputes the target geometry while one is. primaryHeld reports whether
// the primary button is still down; a move without it ends the drag.
func (h *Handler) HandleMove(globalPos geometry.Point, primaryHeld bool) bool {
	if allHandlersDisabled || h.target.Maximized() {
		return false
	}

	h.resizing = h.resizing && primaryHeld
	if !h.resizing {
		zone := Classify(h.target.Geometry(), globalPos)
		h.updateCursor(zone)
		return zone != geometry.ZoneUndefined
	}

	oldGeometry := h.target.Geometry()
	newGeometry := oldGeometry
	minSize := h.target.MinSize()
	maxSize := h.target.MaxSize()

	// Horizontal axis. The clamp runs on the resulting width so the moving
	// edge can never push the opposite one past the min/max bound.
	switch {
	case h.zone.Has(geometry.ZoneLeft):
		delta := oldGeometry.X - globalPos.X
		newWidth := clampExtent(oldGeometry.Width+delta, minSize.Width, maxSize.Width)
		delta = newWidth - oldGeometry.Width
		if delta != 0 {
			newGeometry.X -= delta
			newGeometry.Width += delta
		}
	case h.zone.Has(geometry.ZoneRight):
		delta := globalPos.X - newGeometry.Right()
		newWidth := clampExtent(oldGeometry.Width+delta, minSize.Width, maxSize.Width)
		delta = newWidth - oldGeometry.Width
		if delta != 0 {
			newGeometry.Width += delta
		}
	}

	// Vertical axis.
	switch {
	case h.zone.Has(geometry.ZoneTop):
		delta := oldGeometry.Y - globalPos.Y
		newHeight := clampExtent(oldGeometry.Height+delta, minSize.Height, maxSize.Height)
		delta = newHeight - oldGeometry.Height
		if delta != 0 {
			newGeometry.Y -= delta
			newGeometry.Height += delta
		}
	case h.zone.Has(geometry.ZoneBottom):
		delta := globalPos.Y - newGeometry.Bottom()
		newHeight := clampExtent(oldGeometry.Height+delta, minSize.Height, maxSize.Height)
		delta = newHeight - oldGeometry.Height
		if delta != 0 {
			newGeometry.Height += delta
		}
	}

	if newGeometry != oldGeometry {
		h.target.SetGeometry(newGeometry)
	}
	return true
}

func (h *Handler) updateCursor(zone geometry.Zone) {
	if zone == geometry.ZoneUndefined {
		h.target.RestoreCursor()
		return
	}
	h.target.SetCursor(CursorFor(zone))
}

func clampExtent(v, lo, hi int) int {
	if hi <= 0 || hi >= unboundedExtent {
		hi = unboundedExtent
	}
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}
