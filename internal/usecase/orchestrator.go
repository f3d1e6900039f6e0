// Package usecase contains the discovery and patching logic.
package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/eliteGoblin/focusd/pt_titlebar/internal/domain"
	"github.com/eliteGoblin/focusd/pt_titlebar/internal/policy"
)

// State is a phase of the orchestrator. Phases only move forward.
type State string

const (
	StateSearchingProcess State = "searching_process"
	StateAwaitingChildren State = "awaiting_children"
	StatePatching         State = "patching"
	StateFinalizing       State = "finalizing"
	StateDone             State = "done"
)

// OrchestratorConfig holds orchestrator configuration.
type OrchestratorConfig struct {
	Retry   RetryPolicy
	OnState func(State) // Called when a state is entered, may be nil
}

// DefaultOrchestratorConfig returns an unbounded configuration polling at the target's interval.
func DefaultOrchestratorConfig(t domain.Target) OrchestratorConfig {
	interval := t.PollInterval
	if interval <= 0 {
		interval = policy.DefaultPollInterval
	}
	return OrchestratorConfig{
		Retry: NewRetryPolicy(interval),
	}
}

// Orchestrator implements domain.Runner.
// It finds the main window, waits for its children, patches every
// decoration child and maximizes the main window.
type Orchestrator struct {
	config    OrchestratorConfig
	target    domain.Target
	windows   domain.WindowSystem
	processes domain.ProcessInspector
	finder    *WindowFinder
	isTarget  domain.MatchPredicate
	isSignal  domain.MatchPredicate
	patcher   domain.Patcher
	logger    *zap.Logger
}

// NewOrchestrator creates a new orchestrator. pi may be nil, in which
// case the owning process is not resolved.
func NewOrchestrator(
	config OrchestratorConfig,
	target domain.Target,
	ws domain.WindowSystem,
	pi domain.ProcessInspector,
	patcher domain.Patcher,
	logger *zap.Logger,
) *Orchestrator {
	matcher := policy.NewChildMatcher(target)
	return &Orchestrator{
		config:    config,
		target:    target,
		windows:   ws,
		processes: pi,
		finder:    NewWindowFinder(ws, target.TitleFragment),
		isTarget:  matcher.DecorationTarget(),
		isSignal:  matcher.InitializationSignal(),
		patcher:   patcher,
		logger:    logger,
	}
}

// Run executes the pipeline once. It only returns early when ctx ends or
// a bounded retry policy runs out of attempts.
func (o *Orchestrator) Run(ctx context.Context) (*domain.PatchResult, error) {
	start := time.Now()

	result := &domain.PatchResult{
		TargetID:       o.target.ID,
		PatchedWindows: make([]domain.Handle, 0),
		IgnoredWindows: make([]domain.Handle, 0),
		States:         make([]string, 0, 5),
		ExecutedAt:     start,
	}

	o.enter(result, StateSearchingProcess)
	mainWnd, attempts, err := PollFor(ctx, o.config.Retry, o.finder.Find)
	result.SearchAttempts = attempts
	if err != nil {
		return result, fmt.Errorf("searching for %s window: %w", o.target.Name, err)
	}
	result.MainWindow = mainWnd
	result.MainTitle = domain.Truncate(o.windows.Title(mainWnd), domain.MaxTextLen)
	o.logger.Info("found main window",
		zap.Uintptr("hwnd", uintptr(mainWnd)),
		zap.String("title", result.MainTitle),
		zap.Int("attempts", attempts))
	o.resolveProcess(mainWnd, result)

	o.enter(result, StateAwaitingChildren)
	attempts, err = o.config.Retry.Poll(ctx, func() bool {
		return o.hasInitializedChildren(mainWnd)
	})
	result.ChildAttempts = attempts
	if err != nil {
		return result, fmt.Errorf("waiting for %s child windows: %w", o.target.Name, err)
	}

	o.enter(result, StatePatching)
	for child := range o.windows.ChildWindows(mainWnd) {
		if !o.isTarget(childDescriptor(o.windows, child)) {
			result.IgnoredWindows = append(result.IgnoredWindows, child)
			continue
		}
		o.patcher.Patch(child)
		result.PatchedWindows = append(result.PatchedWindows, child)
	}

	o.enter(result, StateFinalizing)
	if err := o.windows.Maximize(mainWnd); err != nil {
		o.logger.Debug("failed to maximize main window",
			zap.Uintptr("hwnd", uintptr(mainWnd)),
			zap.Error(err))
	}

	o.enter(result, StateDone)
	result.DurationMs = time.Since(start).Milliseconds()

	return result, nil
}

// hasInitializedChildren reports whether any child carries the initialization signal.
func (o *Orchestrator) hasInitializedChildren(mainWnd domain.Handle) bool {
	return anyMatch(o.windows.ChildWindows(mainWnd), func(h domain.Handle) bool {
		return o.isSignal(childDescriptor(o.windows, h))
	})
}

// resolveProcess fills in the owning process. Best effort, for the run summary only.
func (o *Orchestrator) resolveProcess(mainWnd domain.Handle, result *domain.PatchResult) {
	pid, err := o.windows.ProcessID(mainWnd)
	if err != nil {
		o.logger.Debug("failed to resolve window process", zap.Error(err))
		return
	}
	result.PID = pid

	if o.processes == nil {
		return
	}
	name, err := o.processes.NameOf(pid)
	if err != nil {
		o.logger.Debug("failed to resolve process name",
			zap.Int("pid", pid),
			zap.Error(err))
		return
	}
	result.ProcessName = name
}

func (o *Orchestrator) enter(result *domain.PatchResult, s State) {
	result.States = append(result.States, string(s))
	o.logger.Debug("entering state", zap.String("state", string(s)))
	if o.config.OnState != nil {
		o.config.OnState(s)
	}
}

// Ensure Orchestrator implements domain.Runner.
var _ domain.Runner = (*Orchestrator)(nil)
