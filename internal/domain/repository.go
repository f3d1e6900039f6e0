package domain

import (
	"context"
	"iter"
)

// WindowSystem is the host windowing API.
// Implementation: user32 on Windows, an in-memory desktop in tests.
type WindowSystem interface {
	// TopLevelWindows yields every top-level window in OS order.
	// Stopping the iteration stops the OS enumeration.
	TopLevelWindows() iter.Seq[Handle]

	// ChildWindows yields the child windows of parent.
	ChildWindows(parent Handle) iter.Seq[Handle]

	// Title returns the window text, empty if unavailable.
	Title(h Handle) string

	// ClassName returns the window class name, empty if unavailable.
	ClassName(h Handle) string

	// Style reads the style bitmask.
	Style(h Handle) (Style, error)

	// SetStyle writes the style bitmask.
	SetStyle(h Handle, s Style) error

	// SetPosition moves, resizes or refreshes the frame of a window.
	SetPosition(h Handle, x, y, width, height int32, flags PositionFlags) error

	// ClientRect returns the client area of a window.
	ClientRect(h Handle) (Rect, error)

	// Parent returns the parent window, false if there is none.
	Parent(h Handle) (Handle, bool)

	// Maximize shows the window maximized.
	Maximize(h Handle) error

	// ProcessID returns the PID owning the window.
	ProcessID(h Handle) (int, error)
}

// ProcessInspector handles OS process lookups.
// Implementation: uses gopsutil for cross-platform support.
type ProcessInspector interface {
	// FindByName returns PIDs of processes matching the pattern.
	FindByName(pattern string) ([]int, error)

	// NameOf returns the executable name of a PID.
	NameOf(pid int) (string, error)
}

// Patcher removes the decoration of a child window and fits it to its parent.
type Patcher interface {
	Patch(h Handle)
}

// Runner drives the discovery and patching pipeline once.
type Runner interface {
	Run(ctx context.Context) (*PatchResult, error)
}
