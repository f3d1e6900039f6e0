// Package policy implements the Strategy pattern for application-specific window rules.
// Each target application defines how its main window and editor children are recognised.
package policy

import (
	"time"

	"github.com/eliteGoblin/focusd/pt_titlebar/internal/domain"
)

// DefaultPollInterval is the delay between discovery attempts.
const DefaultPollInterval = time.Second

// TargetPolicy defines the strategy interface for locating an application's windows.
type TargetPolicy interface {
	// ID returns unique identifier (e.g., "protools").
	ID() string

	// Name returns human-readable name for display.
	Name() string

	// TitleFragment returns the case-sensitive substring of the main window title.
	TitleFragment() string

	// DecorationClass returns the exact class name of child windows to patch.
	DecorationClass() string

	// SignalFragment returns the class substring that shows the
	// application has created its child windows.
	SignalFragment() string

	// ProcessPatterns returns process names of the application.
	ProcessPatterns() []string

	// PollInterval returns how long to wait between discovery attempts.
	PollInterval() time.Duration
}

// ToTarget converts a TargetPolicy to a domain.Target entity.
func ToTarget(tp TargetPolicy) domain.Target {
	return domain.Target{
		ID:              tp.ID(),
		Name:            tp.Name(),
		TitleFragment:   tp.TitleFragment(),
		DecorationClass: tp.DecorationClass(),
		SignalFragment:  tp.SignalFragment(),
		ProcessPatterns: tp.ProcessPatterns(),
		PollInterval:    tp.PollInterval(),
	}
}
