package policy

import (
	"testing"
)

func TestProToolsPolicy_ID(t *testing.T) {
	p := NewProToolsPolicy()
	if p.ID() != "protools" {
		t.Errorf("expected ID 'protools', got '%s'", p.ID())
	}
}

func TestProToolsPolicy_Name(t *testing.T) {
	p := NewProToolsPolicy()
	if p.Name() != "Pro Tools" {
		t.Errorf("expected Name 'Pro Tools', got '%s'", p.Name())
	}
}

func TestProToolsPolicy_MatchingStrings(t *testing.T) {
	p := NewProToolsPolicy()

	if p.TitleFragment() != "Pro Tools" {
		t.Errorf("expected title fragment 'Pro Tools', got '%s'", p.TitleFragment())
	}
	if p.DecorationClass() != "DigiMDIWndClass" {
		t.Errorf("expected decoration class 'DigiMDIWndClass', got '%s'", p.DecorationClass())
	}
	if p.SignalFragment() != "Digi" {
		t.Errorf("expected signal fragment 'Digi', got '%s'", p.SignalFragment())
	}
}

func TestProToolsPolicy_ProcessPatterns(t *testing.T) {
	p := NewProToolsPolicy()
	if len(p.ProcessPatterns()) == 0 {
		t.Error("expected at least one process pattern")
	}
}

func TestProToolsPolicy_PollInterval(t *testing.T) {
	p := NewProToolsPolicy()
	if p.PollInterval() != DefaultPollInterval {
		t.Errorf("expected interval %v, got %v", DefaultPollInterval, p.PollInterval())
	}
}

func TestToTarget(t *testing.T) {
	target := ToTarget(NewProToolsPolicy())

	if target.ID != "protools" || target.TitleFragment != "Pro Tools" || target.DecorationClass != "DigiMDIWndClass" {
		t.Errorf("unexpected target: %+v", target)
	}
	if target.PollInterval != DefaultPollInterval {
		t.Errorf("expected interval %v, got %v", DefaultPollInterval, target.PollInterval)
	}
}
