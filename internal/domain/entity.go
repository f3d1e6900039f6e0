// Package domain contains core window entities and the ports the usecases depend on.
// This is the innermost layer - no external dependencies.
package domain

import (
	"time"
	"unicode/utf8"
)

// MaxTextLen is the longest class name or title read from a window.
// Longer text is truncated, mirroring a 256-slot buffer with terminator.
const MaxTextLen = 255

// Handle names a window owned by the OS. It may stop naming a live
// window at any time; every operation on it must tolerate that.
type Handle uintptr

// Descriptor is the text read from a window at one point in time.
type Descriptor struct {
	ClassName string
	Title     string
}

// NewDescriptor builds a Descriptor, truncating both fields to MaxTextLen.
func NewDescriptor(className, title string) Descriptor {
	return Descriptor{
		ClassName: Truncate(className, MaxTextLen),
		Title:     Truncate(title, MaxTextLen),
	}
}

// Truncate cuts s to at most limit characters. Invalid UTF-8 is counted byte by byte.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}

// MatchPredicate decides whether a window descriptor matches a rule.
type MatchPredicate func(Descriptor) bool

// Style is a window style bitmask.
type Style uint32

// Style bits, values as defined by the Win32 headers.
const (
	StyleOverlapped  Style = 0x00000000
	StyleMaximizeBox Style = 0x00010000
	StyleMinimizeBox Style = 0x00020000
	StyleThickFrame  Style = 0x00040000
	StyleSysMenu     Style = 0x00080000
	StyleBorder      Style = 0x00800000
	StyleDlgFrame    Style = 0x00400000
	StyleCaption     Style = StyleBorder | StyleDlgFrame
	StyleChild       Style = 0x40000000
	StyleVisible     Style = 0x10000000

	StyleOverlappedWindow = StyleOverlapped | StyleCaption | StyleSysMenu |
		StyleThickFrame | StyleMinimizeBox | StyleMaximizeBox
)

// Patched returns the style with caption and border cleared and the
// system-button bits of the overlapped window group set.
// Bits are cleared before being added, so Patched is idempotent.
func (s Style) Patched() Style {
	s &^= StyleCaption | StyleBorder
	s |= StyleOverlappedWindow &^ StyleCaption
	return s
}

// Has reports whether every bit of mask is set.
func (s Style) Has(mask Style) bool {
	return s&mask == mask
}

// PositionFlags control a SetPosition call.
type PositionFlags uint32

const (
	PosNoSize       PositionFlags = 0x0001
	PosNoMove       PositionFlags = 0x0002
	PosNoZOrder     PositionFlags = 0x0004
	PosFrameChanged PositionFlags = 0x0020
)

// FrameChangeFlags recompute the non-client frame without moving, sizing or reordering.
const FrameChangeFlags = PosNoMove | PosNoSize | PosNoZOrder | PosFrameChanged

// Rect is a rectangle in parent-local coordinates.
type Rect struct {
	Left, Top, Right, Bottom int32
}

// Width returns the horizontal extent.
func (r Rect) Width() int32 { return r.Right - r.Left }

// Height returns the vertical extent.
func (r Rect) Height() int32 { return r.Bottom - r.Top }

// Target holds the hard-coded rules used to find and patch an application.
type Target struct {
	ID              string
	Name            string
	TitleFragment   string   // Substring of the main window title
	DecorationClass string   // Exact class of child windows to patch
	SignalFragment  string   // Class substring meaning "children exist"
	ProcessPatterns []string // Process names used by the status probe
	PollInterval    time.Duration
}

// PatchResult captures what happened during a single run.
type PatchResult struct {
	TargetID       string
	MainWindow     Handle
	MainTitle      string
	PID            int
	ProcessName    string
	SearchAttempts int
	ChildAttempts  int
	PatchedWindows []Handle
	IgnoredWindows []Handle // Children that did not match the decoration class
	States         []string
	ExecutedAt     time.Time
	DurationMs     int64
}

// Status is a read-only snapshot of the target application.
type Status struct {
	TargetID           string
	ProcessPIDs        []int
	MainWindow         Handle
	MainTitle          string
	WindowFound        bool
	SignalChildren     int
	DecorationChildren int
}
