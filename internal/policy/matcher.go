package policy

import (
	"strings"

	"github.com/eliteGoblin/focusd/pt_titlebar/internal/domain"
)

// ChildMatcher classifies child windows by class name.
type ChildMatcher struct {
	decorationClass string
	signalFragment  string
}

// NewChildMatcher creates a matcher for the given target rules.
func NewChildMatcher(t domain.Target) ChildMatcher {
	return ChildMatcher{
		decorationClass: t.DecorationClass,
		signalFragment:  t.SignalFragment,
	}
}

// IsDecorationTarget reports whether the class name is exactly the decoration class.
func (m ChildMatcher) IsDecorationTarget(d domain.Descriptor) bool {
	return d.ClassName == m.decorationClass
}

// IsInitializationSignal reports whether the class name shows the
// application has started creating its child windows. It is looser than
// IsDecorationTarget: any class containing the signal fragment counts.
func (m ChildMatcher) IsInitializationSignal(d domain.Descriptor) bool {
	if d.ClassName == m.decorationClass {
		return true
	}
	return m.signalFragment != "" && strings.Contains(d.ClassName, m.signalFragment)
}

// DecorationTarget returns IsDecorationTarget as a MatchPredicate.
func (m ChildMatcher) DecorationTarget() domain.MatchPredicate {
	return m.IsDecorationTarget
}

// InitializationSignal returns IsInitializationSignal as a MatchPredicate.
func (m ChildMatcher) InitializationSignal() domain.MatchPredicate {
	return m.IsInitializationSignal
}

// TitleContains returns a predicate matching titles that contain fragment.
func TitleContains(fragment string) domain.MatchPredicate {
	return func(d domain.Descriptor) bool {
		return strings.Contains(d.Title, fragment)
	}
}
