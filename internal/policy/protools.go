package policy

import "time"

// ProToolsPolicy implements TargetPolicy for Avid Pro Tools.
// The Edit and Mix windows are MDI children of class DigiMDIWndClass
// that draw a legacy title bar inside the main frame.
type ProToolsPolicy struct{}

// NewProToolsPolicy creates the Pro Tools window policy.
func NewProToolsPolicy() *ProToolsPolicy {
	return &ProToolsPolicy{}
}

func (p *ProToolsPolicy) ID() string {
	return "protools"
}

func (p *ProToolsPolicy) Name() string {
	return "Pro Tools"
}

func (p *ProToolsPolicy) TitleFragment() string {
	return "Pro Tools"
}

func (p *ProToolsPolicy) DecorationClass() string {
	return "DigiMDIWndClass"
}

func (p *ProToolsPolicy) SignalFragment() string {
	return "Digi"
}

// ProcessPatterns returns Pro Tools process names on Windows.
func (p *ProToolsPolicy) ProcessPatterns() []string {
	return []string{
		"ProTools",
	}
}

func (p *ProToolsPolicy) PollInterval() time.Duration {
	return DefaultPollInterval
}

// Ensure ProToolsPolicy implements TargetPolicy.
var _ TargetPolicy = (*ProToolsPolicy)(nil)
