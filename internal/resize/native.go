package resize

import (
	"github.com/bnema/dockyard/internal/geometry"
)

// Width of the border band examined by native hit-testing, in native pixels.
const nativeBorderWidth = 8

// HitCode is the platform-neutral result of a native frame hit-test.
type HitCode int

const (
	// HitNone means the hit-test was skipped (e.g. a client-side drag is
	// in progress) and the generic path should handle the event.
	HitNone HitCode = iota

	// HitClient is the unmatched fallback; the bridge reports it as
	// unhandled so the OS default resolves the position.
	HitClient

	HitCaption
	HitLeft
	HitRight
	HitTop
	HitBottom
	HitTopLeft
	HitTopRight
	HitBottomLeft
	HitBottomRight
)

func (c HitCode) String() string {
	switch c {
	case HitClient:
		return "client"
	case HitCaption:
		return "caption"
	case HitLeft:
		return "left"
	case HitRight:
		return "right"
	case HitTop:
		return "top"
	case HitBottom:
		return "bottom"
	case HitTopLeft:
		return "top-left"
	case HitTopRight:
		return "top-right"
	case HitBottomLeft:
		return "bottom-left"
	case HitBottomRight:
		return "bottom-right"
	default:
		return "none"
	}
}

// NativeWindow is a top-level window exposed to the native bridge.
// FrameRect is the real window rectangle in native pixels; DragRect the
// caption region (logical coordinates) where the OS may start a native
// drag.
type NativeWindow interface {
	Target

	FrameRect() geometry.Rect
	DragRect() geometry.Rect

	// DisallowsDragAt reports sub-regions of the caption that must not
	// start a drag, such as the close control.
	DisallowsDragAt(geometry.Point) bool

	// SetLastHitTest caches the resolved code for later queries.
	SetLastHitTest(HitCode)

	// OnTitleBarDoubleClick runs the title bar's own double-click action
	// (re-docking) when native maximize is not configured.
	OnTitleBarDoubleClick()

	// Scale is the display scale factor for native-pixel conversion.
	Scale() float64

	// WorkArea returns the primary display's available work area in
	// logical coordinates. ok is false when the window is not on the
	// primary display; constraint queries are then left to the OS.
	WorkArea() (area geometry.Rect, ok bool)
}

// NativeMessage is a raw windowing-system message handed to the bridge.
type NativeMessage struct {
	HWND   uintptr
	Msg    uint32
	WParam uintptr
	LParam uintptr
}

// NativeConfig carries the host decisions the bridge needs.
type NativeConfig struct {
	// DoubleClickMaximizes lets the OS handle a caption double-click as a
	// native maximize instead of delegating to the title bar.
	DoubleClickMaximizes bool

	// InClientDrag reports whether a non-native dock drag is in progress
	// elsewhere in the application; hit-testing then yields no hit.
	InClientDrag func() bool
}

// HitTest resolves a native cursor position against the window frame with an
// 8-pixel band, corner before edge, honoring fixed axes (min == max means
// that axis's edges are not resizable). Unmatched border positions fall
// through to the caption drag region and finally to HitClient. Pure; the
// platform bridges wrap it.
func HitTest(win NativeWindow, pos geometry.Point) HitCode {
	rect := win.FrameRect()
	minSize := win.MinSize()
	maxSize := win.MaxSize()
	fixedWidth := maxSize.Width > 0 && minSize.Width == maxSize.Width
	fixedHeight := maxSize.Height > 0 && minSize.Height == maxSize.Height

	x, y := pos.X, pos.Y
	nearLeft := x >= rect.X && x <= rect.X+nativeBorderWidth
	nearRight := x <= rect.Right() && x >= rect.Right()-nativeBorderWidth
	nearTop := y >= rect.Y && y <= rect.Y+nativeBorderWidth
	nearBottom := y <= rect.Bottom() && y >= rect.Bottom()-nativeBorderWidth

	switch {
	case nearLeft && nearBottom:
		return HitBottomLeft
	case nearRight && nearBottom:
		return HitBottomRight
	case nearLeft && nearTop:
		return HitTopLeft
	case nearRight && nearTop:
		return HitTopRight
	case !fixedWidth && nearLeft:
		return HitLeft
	case !fixedHeight && nearTop:
		return HitTop
	case !fixedHeight && nearBottom:
		return HitBottom
	case !fixedWidth && nearRight:
		return HitRight
	}

	scale := win.Scale()
	if scale <= 0 {
		scale = 1
	}
	logical := geometry.Point{
		X: int(float64(x) / scale),
		Y: int(float64(y) / scale),
	}
	if win.DragRect().Contains(logical) && !win.DisallowsDragAt(logical) {
		return HitCaption
	}
	return HitClient
}
