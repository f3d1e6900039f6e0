package usecase

import (
	"github.com/eliteGoblin/focusd/pt_titlebar/internal/domain"
	"github.com/eliteGoblin/focusd/pt_titlebar/internal/policy"
)

// WindowFinder scans top-level windows for the first one whose title matches.
type WindowFinder struct {
	windows domain.WindowSystem
	match   domain.MatchPredicate
}

// NewWindowFinder creates a finder for titles containing titleFragment.
func NewWindowFinder(ws domain.WindowSystem, titleFragment string) *WindowFinder {
	return &WindowFinder{
		windows: ws,
		match:   policy.TitleContains(titleFragment),
	}
}

// Find returns the first matching top-level window in OS enumeration order.
// Not finding one is a normal outcome.
func (f *WindowFinder) Find() (domain.Handle, bool) {
	return findFirst(f.windows.TopLevelWindows(), func(h domain.Handle) bool {
		return f.match(domain.NewDescriptor("", f.windows.Title(h)))
	})
}

// childDescriptor reads the class name of a child window.
func childDescriptor(ws domain.WindowSystem, h domain.Handle) domain.Descriptor {
	return domain.NewDescriptor(ws.ClassName(h), "")
}
