// Package fixtures provides test helpers shared by unit and integration tests.
package fixtures

import (
	"errors"
	"fmt"
	"iter"
	"sync"

	"github.com/eliteGoblin/focusd/pt_titlebar/internal/domain"
)

// ErrInvalidHandle is returned for handles that were never created or were destroyed.
var ErrInvalidHandle = errors.New("invalid window handle")

// FakeWindow is a window living in a FakeDesktop.
type FakeWindow struct {
	Handle    domain.Handle
	Title     string
	ClassName string
	Style     domain.Style
	Parent    domain.Handle
	Client    domain.Rect
	PID       int
	Maximized bool
	Destroyed bool
	children  []domain.Handle
}

// PositionCall records one SetPosition request.
type PositionCall struct {
	Handle        domain.Handle
	X, Y          int32
	Width, Height int32
	Flags         domain.PositionFlags
}

// FakeDesktop is an in-memory domain.WindowSystem.
type FakeDesktop struct {
	mu        sync.Mutex
	next      domain.Handle
	windows   map[domain.Handle]*FakeWindow
	topLevel  []domain.Handle
	positions []PositionCall
	styleSets map[domain.Handle]int

	topLevelScans int
	childScans    int

	// BeforeTopLevelScan runs before each top-level enumeration with its 1-based number.
	BeforeTopLevelScan func(scan int)
	// BeforeChildScan runs before each child enumeration with its 1-based number.
	BeforeChildScan func(scan int)
}

// NewFakeDesktop creates an empty desktop.
func NewFakeDesktop() *FakeDesktop {
	return &FakeDesktop{
		next:      0x10000,
		windows:   make(map[domain.Handle]*FakeWindow),
		styleSets: make(map[domain.Handle]int),
	}
}

// AddTopLevel creates a top-level window with an overlapped style.
func (d *FakeDesktop) AddTopLevel(title, className string, client domain.Rect) domain.Handle {
	d.mu.Lock()
	defer d.mu.Unlock()

	w := d.newWindow(title, className)
	w.Style = domain.StyleOverlappedWindow | domain.StyleVisible
	w.Client = client
	d.topLevel = append(d.topLevel, w.Handle)
	return w.Handle
}

// AddChild creates a child window of parent with a captioned MDI style.
// It panics if parent was never created.
func (d *FakeDesktop) AddChild(parent domain.Handle, className string) domain.Handle {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, ok := d.windows[parent]
	if !ok {
		panic(fmt.Sprintf("fixtures: AddChild on unknown parent %#x", uintptr(parent)))
	}

	w := d.newWindow("", className)
	w.Style = domain.StyleChild | domain.StyleVisible | domain.StyleOverlappedWindow
	w.Parent = parent
	w.PID = p.PID
	p.children = append(p.children, w.Handle)
	return w.Handle
}

// AddOrphan creates a window that is neither top-level nor parented, for patcher tests.
func (d *FakeDesktop) AddOrphan(className string, style domain.Style) domain.Handle {
	d.mu.Lock()
	defer d.mu.Unlock()

	w := d.newWindow("", className)
	w.Style = style
	return w.Handle
}

func (d *FakeDesktop) newWindow(title, className string) *FakeWindow {
	d.next += 0x10
	w := &FakeWindow{
		Handle:    d.next,
		Title:     title,
		ClassName: className,
		PID:       4242,
	}
	d.windows[w.Handle] = w
	return w
}

// Destroy marks a window dead. Later calls on it fail or return empty values.
func (d *FakeDesktop) Destroy(h domain.Handle) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if w, ok := d.windows[h]; ok {
		w.Destroyed = true
	}
}

// Window returns a copy of the window state.
func (d *FakeDesktop) Window(h domain.Handle) FakeWindow {
	d.mu.Lock()
	defer d.mu.Unlock()

	if w, ok := d.windows[h]; ok {
		return *w
	}
	return FakeWindow{}
}

// Positions returns SetPosition calls made on h, in order.
func (d *FakeDesktop) Positions(h domain.Handle) []PositionCall {
	d.mu.Lock()
	defer d.mu.Unlock()

	var calls []PositionCall
	for _, c := range d.positions {
		if c.Handle == h {
			calls = append(calls, c)
		}
	}
	return calls
}

// StyleWrites returns how many times the style of h was written.
func (d *FakeDesktop) StyleWrites(h domain.Handle) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.styleSets[h]
}

// TopLevelScans returns how many top-level enumerations ran.
func (d *FakeDesktop) TopLevelScans() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.topLevelScans
}

// ChildScans returns how many child enumerations ran.
func (d *FakeDesktop) ChildScans() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.childScans
}

func (d *FakeDesktop) live(h domain.Handle) (*FakeWindow, bool) {
	w, ok := d.windows[h]
	if !ok || w.Destroyed {
		return nil, false
	}
	return w, true
}

// TopLevelWindows yields live top-level windows in creation order.
func (d *FakeDesktop) TopLevelWindows() iter.Seq[domain.Handle] {
	return func(yield func(domain.Handle) bool) {
		d.mu.Lock()
		d.topLevelScans++
		scan, hook := d.topLevelScans, d.BeforeTopLevelScan
		d.mu.Unlock()
		if hook != nil {
			hook(scan)
		}

		for _, h := range d.snapshot(d.topLevelHandles) {
			if !yield(h) {
				return
			}
		}
	}
}

// ChildWindows yields live direct children of parent.
func (d *FakeDesktop) ChildWindows(parent domain.Handle) iter.Seq[domain.Handle] {
	return func(yield func(domain.Handle) bool) {
		d.mu.Lock()
		d.childScans++
		scan, hook := d.childScans, d.BeforeChildScan
		d.mu.Unlock()
		if hook != nil {
			hook(scan)
		}

		handles := d.snapshot(func() []domain.Handle {
			if w, ok := d.live(parent); ok {
				return w.children
			}
			return nil
		})
		for _, h := range handles {
			if !yield(h) {
				return
			}
		}
	}
}

func (d *FakeDesktop) topLevelHandles() []domain.Handle {
	return d.topLevel
}

// snapshot copies the live handles from list so callers can mutate the desktop while iterating.
func (d *FakeDesktop) snapshot(list func() []domain.Handle) []domain.Handle {
	d.mu.Lock()
	defer d.mu.Unlock()

	var out []domain.Handle
	for _, h := range list() {
		if _, ok := d.live(h); ok {
			out = append(out, h)
		}
	}
	return out
}

// Title returns the truncated title, empty for dead windows.
func (d *FakeDesktop) Title(h domain.Handle) string {
	d.mu.Lock()
	defer d.mu.Unlock()

	if w, ok := d.live(h); ok {
		return domain.Truncate(w.Title, domain.MaxTextLen)
	}
	return ""
}

// ClassName returns the truncated class name, empty for dead windows.
func (d *FakeDesktop) ClassName(h domain.Handle) string {
	d.mu.Lock()
	defer d.mu.Unlock()

	if w, ok := d.live(h); ok {
		return domain.Truncate(w.ClassName, domain.MaxTextLen)
	}
	return ""
}

// Style returns the current style bitmask.
func (d *FakeDesktop) Style(h domain.Handle) (domain.Style, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	w, ok := d.live(h)
	if !ok {
		return 0, ErrInvalidHandle
	}
	return w.Style, nil
}

// SetStyle stores the style and counts the write.
func (d *FakeDesktop) SetStyle(h domain.Handle, s domain.Style) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	w, ok := d.live(h)
	if !ok {
		return ErrInvalidHandle
	}
	w.Style = s
	d.styleSets[h]++
	return nil
}

// SetPosition records the request without changing geometry.
func (d *FakeDesktop) SetPosition(h domain.Handle, x, y, width, height int32, flags domain.PositionFlags) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.live(h); !ok {
		return ErrInvalidHandle
	}
	d.positions = append(d.positions, PositionCall{
		Handle: h,
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Flags:  flags,
	})
	return nil
}

// ClientRect returns the client area given at creation.
func (d *FakeDesktop) ClientRect(h domain.Handle) (domain.Rect, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	w, ok := d.live(h)
	if !ok {
		return domain.Rect{}, ErrInvalidHandle
	}
	return w.Client, nil
}

// Parent returns the parent of a live child window.
func (d *FakeDesktop) Parent(h domain.Handle) (domain.Handle, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	w, ok := d.live(h)
	if !ok || w.Parent == 0 {
		return 0, false
	}
	return w.Parent, true
}

// Maximize marks the window maximized.
func (d *FakeDesktop) Maximize(h domain.Handle) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	w, ok := d.live(h)
	if !ok {
		return ErrInvalidHandle
	}
	w.Maximized = true
	return nil
}

// ProcessID returns the fake owning PID.
func (d *FakeDesktop) ProcessID(h domain.Handle) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	w, ok := d.live(h)
	if !ok {
		return 0, ErrInvalidHandle
	}
	return w.PID, nil
}

// Ensure FakeDesktop implements domain.WindowSystem.
var _ domain.WindowSystem = (*FakeDesktop)(nil)
