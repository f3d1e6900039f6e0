package usecase

import (
	"go.uber.org/zap"

	"github.com/eliteGoblin/focusd/pt_titlebar/internal/domain"
	"github.com/eliteGoblin/focusd/pt_titlebar/internal/policy"
)

// StatusProbe takes a one-shot snapshot of the target without mutating anything.
type StatusProbe struct {
	target    domain.Target
	windows   domain.WindowSystem
	processes domain.ProcessInspector
	logger    *zap.Logger
}

// NewStatusProbe creates a new status probe.
func NewStatusProbe(
	target domain.Target,
	ws domain.WindowSystem,
	pi domain.ProcessInspector,
	logger *zap.Logger,
) *StatusProbe {
	return &StatusProbe{
		target:    target,
		windows:   ws,
		processes: pi,
		logger:    logger,
	}
}

// Check scans processes and windows once.
func (s *StatusProbe) Check() *domain.Status {
	status := &domain.Status{
		TargetID:    s.target.ID,
		ProcessPIDs: make([]int, 0),
	}

	if s.processes != nil {
		seen := make(map[int]bool)
		for _, pattern := range s.target.ProcessPatterns {
			pids, err := s.processes.FindByName(pattern)
			if err != nil {
				s.logger.Warn("failed to find processes",
					zap.String("pattern", pattern),
					zap.Error(err))
				continue
			}
			for _, pid := range pids {
				if !seen[pid] {
					seen[pid] = true
					status.ProcessPIDs = append(status.ProcessPIDs, pid)
				}
			}
		}
	}

	mainWnd, ok := NewWindowFinder(s.windows, s.target.TitleFragment).Find()
	if !ok {
		return status
	}
	status.WindowFound = true
	status.MainWindow = mainWnd
	status.MainTitle = domain.Truncate(s.windows.Title(mainWnd), domain.MaxTextLen)

	matcher := policy.NewChildMatcher(s.target)
	status.SignalChildren = s.countChildren(mainWnd, matcher.InitializationSignal())
	status.DecorationChildren = s.countChildren(mainWnd, matcher.DecorationTarget())

	return status
}

func (s *StatusProbe) countChildren(mainWnd domain.Handle, match domain.MatchPredicate) int {
	return countMatches(s.windows.ChildWindows(mainWnd), func(h domain.Handle) bool {
		return match(childDescriptor(s.windows, h))
	})
}
