//go:build windows

package infra

import (
	"iter"
	"syscall"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"

	"github.com/eliteGoblin/focusd/pt_titlebar/internal/domain"
)

// Procs not wrapped by x/sys/windows. GetWindowLongPtrW and
// SetWindowLongPtrW only exist in 64-bit user32.
var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procEnumWindows       = user32.NewProc("EnumWindows")
	procEnumChildWindows  = user32.NewProc("EnumChildWindows")
	procGetWindowTextW    = user32.NewProc("GetWindowTextW")
	procGetWindowLongPtrW = user32.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtrW = user32.NewProc("SetWindowLongPtrW")
	procSetWindowPos      = user32.NewProc("SetWindowPos")
	procGetClientRect     = user32.NewProc("GetClientRect")
	procGetParent         = user32.NewProc("GetParent")
	procShowWindow        = user32.NewProc("ShowWindow")
	procSetLastError      = kernel32.NewProc("SetLastError")
)

const gwlStyle = -16

// textBufferSize holds MaxTextLen characters plus the terminator.
const textBufferSize = domain.MaxTextLen + 1

// enumProc is shared by every enumeration: windows.NewCallback slots are
// limited per process and never released. lParam is an enumRegistry ID.
var enumProc = windows.NewCallback(func(hwnd windows.HWND, lparam uintptr) uintptr {
	if enumerations.dispatch(lparam, domain.Handle(hwnd)) {
		return 1
	}
	return 0
})

// Win32WindowSystem implements domain.WindowSystem over user32.
type Win32WindowSystem struct{}

// NewWindowSystem creates the user32-backed window system.
func NewWindowSystem() (domain.WindowSystem, error) {
	if err := procGetWindowLongPtrW.Find(); err != nil {
		return nil, errors.Wrap(ErrUnsupportedPlatform, err.Error())
	}
	return &Win32WindowSystem{}, nil
}

// TopLevelWindows yields top-level windows via EnumWindows.
func (w *Win32WindowSystem) TopLevelWindows() iter.Seq[domain.Handle] {
	return func(yield func(domain.Handle) bool) {
		id := enumerations.register(yield)
		defer enumerations.release(id)

		// EnumWindows returns FALSE when the callback stops early; that is expected.
		procEnumWindows.Call(enumProc, id)
	}
}

// ChildWindows yields descendants of parent via EnumChildWindows.
func (w *Win32WindowSystem) ChildWindows(parent domain.Handle) iter.Seq[domain.Handle] {
	return func(yield func(domain.Handle) bool) {
		id := enumerations.register(yield)
		defer enumerations.release(id)

		procEnumChildWindows.Call(uintptr(parent), enumProc, id)
	}
}

// Title reads the window text via GetWindowTextW.
func (w *Win32WindowSystem) Title(h domain.Handle) string {
	var buf [textBufferSize]uint16
	n, _, _ := procGetWindowTextW.Call(uintptr(h), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

// ClassName reads the window class via GetClassNameW.
func (w *Win32WindowSystem) ClassName(h domain.Handle) string {
	var buf [textBufferSize]uint16
	n, err := windows.GetClassName(windows.HWND(h), &buf[0], int32(len(buf)))
	if err != nil || n == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

// Style reads GWL_STYLE.
func (w *Win32WindowSystem) Style(h domain.Handle) (domain.Style, error) {
	procSetLastError.Call(0)
	r, _, err := procGetWindowLongPtrW.Call(uintptr(h), uintptr(gwlStyleIndex()))
	if r == 0 {
		if err := callError(err); err != nil {
			return 0, errors.Wrap(err, "GetWindowLongPtrW")
		}
	}
	return domain.Style(uint32(r)), nil
}

// SetStyle writes GWL_STYLE.
func (w *Win32WindowSystem) SetStyle(h domain.Handle, s domain.Style) error {
	procSetLastError.Call(0)
	r, _, err := procSetWindowLongPtrW.Call(uintptr(h), uintptr(gwlStyleIndex()), uintptr(s))
	if r == 0 {
		if err := callError(err); err != nil {
			return errors.Wrap(err, "SetWindowLongPtrW")
		}
	}
	return nil
}

// SetPosition calls SetWindowPos with no insert-after window.
func (w *Win32WindowSystem) SetPosition(h domain.Handle, x, y, width, height int32, flags domain.PositionFlags) error {
	r, _, err := procSetWindowPos.Call(
		uintptr(h),
		0, // hWndInsertAfter, ignored with SWP_NOZORDER
		uintptr(x),
		uintptr(y),
		uintptr(width),
		uintptr(height),
		uintptr(flags),
	)
	if r == 0 {
		return errors.Wrapf(err, "SetWindowPos flags=%#x", uint32(flags))
	}
	return nil
}

// ClientRect reads the client area via GetClientRect.
func (w *Win32WindowSystem) ClientRect(h domain.Handle) (domain.Rect, error) {
	var rc windows.Rect
	r, _, err := procGetClientRect.Call(uintptr(h), uintptr(unsafe.Pointer(&rc)))
	if r == 0 {
		return domain.Rect{}, errors.Wrap(err, "GetClientRect")
	}
	return domain.Rect{Left: rc.Left, Top: rc.Top, Right: rc.Right, Bottom: rc.Bottom}, nil
}

// Parent returns the GetParent window.
func (w *Win32WindowSystem) Parent(h domain.Handle) (domain.Handle, bool) {
	r, _, _ := procGetParent.Call(uintptr(h))
	if r == 0 {
		return 0, false
	}
	return domain.Handle(r), true
}

// Maximize shows a live window with SW_MAXIMIZE.
func (w *Win32WindowSystem) Maximize(h domain.Handle) error {
	if !windows.IsWindow(windows.HWND(h)) {
		return errors.Errorf("ShowWindow: window %#x no longer exists", uintptr(h))
	}
	// The return value is the previous visibility, not a failure indicator
	procShowWindow.Call(uintptr(h), uintptr(windows.SW_MAXIMIZE))
	return nil
}

// ProcessID returns the PID owning the window.
func (w *Win32WindowSystem) ProcessID(h domain.Handle) (int, error) {
	var pid uint32
	if _, err := windows.GetWindowThreadProcessId(windows.HWND(h), &pid); err != nil {
		return 0, errors.Wrap(err, "GetWindowThreadProcessId")
	}
	return int(pid), nil
}

// gwlStyleIndex returns GWL_STYLE as the unsigned bit pattern the call expects.
func gwlStyleIndex() uintptr {
	idx := int32(gwlStyle)
	return uintptr(idx)
}

// callError turns the error of LazyProc.Call into nil when no error code was set.
func callError(err error) error {
	if errno, ok := err.(syscall.Errno); ok && errno == windows.ERROR_SUCCESS {
		return nil
	}
	return err
}

// Ensure Win32WindowSystem implements domain.WindowSystem.
var _ domain.WindowSystem = (*Win32WindowSystem)(nil)
