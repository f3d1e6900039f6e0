// Package infra implements infrastructure concerns (windowing API, processes).
package infra

import (
	"strings"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/eliteGoblin/focusd/pt_titlebar/internal/domain"
)

// ProcessInspectorImpl implements domain.ProcessInspector using gopsutil.
type ProcessInspectorImpl struct{}

// NewProcessInspector creates a new process inspector.
func NewProcessInspector() domain.ProcessInspector {
	return &ProcessInspectorImpl{}
}

// FindByName returns PIDs of processes matching the pattern (case-insensitive).
func (pi *ProcessInspectorImpl) FindByName(pattern string) ([]int, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}

	var found []int
	patternLower := strings.ToLower(pattern)

	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue // Process may have exited
		}

		if strings.Contains(strings.ToLower(name), patternLower) {
			found = append(found, int(p.Pid))
		}
	}

	return found, nil
}

// NameOf returns the executable name of a running process.
func (pi *ProcessInspectorImpl) NameOf(pid int) (string, error) {
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return "", err
	}
	return p.Name()
}

// Ensure ProcessInspectorImpl implements domain.ProcessInspector.
var _ domain.ProcessInspector = (*ProcessInspectorImpl)(nil)
