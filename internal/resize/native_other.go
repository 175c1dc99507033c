//go:build !windows

package resize

// HandleNativeMessage is a no-op outside Windows: the generic pointer path
// in Handler covers edge resizing, and there is no native snap protocol to
// answer.
func HandleNativeMessage(_ NativeWindow, _ NativeMessage, _ NativeConfig) (result uintptr, handled bool) {
	return 0, false
}
