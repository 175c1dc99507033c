//go:build windows

package resize

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/bnema/dockyard/internal/geometry"
)

const (
	wmGetMinMaxInfo   = 0x0024
	wmNCCalcSize      = 0x0083
	wmNCHitTest       = 0x0084
	wmNCLButtonDblClk = 0x00A3
)

// Native hit-test result codes (WM_NCHITTEST).
const (
	htClient      = 1
	htCaption     = 2
	htLeft        = 10
	htRight       = 11
	htTop         = 12
	htTopLeft     = 13
	htTopRight    = 14
	htBottom      = 15
	htBottomLeft  = 16
	htBottomRight = 17
)

type nativePoint struct {
	X int32
	Y int32
}

// minMaxInfo mirrors the Win32 MINMAXINFO structure filled during
// WM_GETMINMAXINFO.
type minMaxInfo struct {
	PtReserved     nativePoint
	PtMaxSize      nativePoint
	PtMaxPosition  nativePoint
	PtMinTrackSize nativePoint
	PtMaxTrackSize nativePoint
}

var (
	user32            = windows.NewLazySystemDLL("user32.dll")
	procDefWindowProc = user32.NewProc("DefWindowProcW")
)

// HandleNativeMessage translates native frame messages for a window whose
// border is fully client-owned, so Windows can still snap, maximize and
// drag it. Returns the message result and whether the message was consumed.
func HandleNativeMessage(win NativeWindow, msg NativeMessage, cfg NativeConfig) (result uintptr, handled bool) {
	if allHandlersDisabled {
		return 0, false
	}

	switch msg.Msg {
	case wmNCCalcSize:
		// Suppress the default non-client calculation: no native border.
		return 0, true

	case wmNCHitTest:
		if cfg.InClientDrag != nil && cfg.InClientDrag() {
			// A client-side dock drag owns the pointer.
			return 0, false
		}
		pos := geometry.Point{
			X: int(int16(msg.LParam & 0xffff)),
			Y: int(int16((msg.LParam >> 16) & 0xffff)),
		}
		code := HitTest(win, pos)
		win.SetLastHitTest(code)
		value := nativeHitValue(code)
		if value == 0 {
			return 0, false
		}
		return value, true

	case wmNCLButtonDblClk:
		if cfg.DoubleClickMaximizes {
			// Accept the native action, a maximize.
			return 0, false
		}
		win.OnTitleBarDoubleClick()
		return 0, true

	case wmGetMinMaxInfo:
		workArea, ok := win.WorkArea()
		if !ok {
			return 0, false
		}
		//nolint:errcheck // DefWindowProc fills the defaults we then patch.
		procDefWindowProc.Call(msg.HWND, uintptr(msg.Msg), msg.WParam, msg.LParam)

		scale := win.Scale()
		if scale <= 0 {
			scale = 1
		}
		minSize := win.MinSize()

		mmi := (*minMaxInfo)(unsafe.Pointer(msg.LParam))
		mmi.PtMaxSize.Y = int32(float64(workArea.Height) * scale)
		// -1, otherwise the maximized size comes out bogus.
		mmi.PtMaxSize.X = int32(float64(workArea.Width)*scale) - 1
		mmi.PtMaxPosition.X = int32(workArea.X)
		mmi.PtMaxPosition.Y = int32(workArea.Y)
		mmi.PtMinTrackSize.X = int32(float64(minSize.Width) * scale)
		mmi.PtMinTrackSize.Y = int32(float64(minSize.Height) * scale)
		return 0, true
	}

	return 0, false
}

func nativeHitValue(code HitCode) uintptr {
	switch code {
	case HitCaption:
		return htCaption
	case HitLeft:
		return htLeft
	case HitRight:
		return htRight
	case HitTop:
		return htTop
	case HitBottom:
		return htBottom
	case HitTopLeft:
		return htTopLeft
	case HitTopRight:
		return htTopRight
	case HitBottomLeft:
		return htBottomLeft
	case HitBottomRight:
		return htBottomRight
	default:
		// HitClient and HitNone defer to the OS default.
		return 0
	}
}
