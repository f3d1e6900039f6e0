package usecase

import (
	"go.uber.org/zap"

	"github.com/eliteGoblin/focusd/pt_titlebar/internal/domain"
)

// StylePatcher implements domain.Patcher.
// It strips caption and border from a child window, keeps the system
// buttons and resizes the window to its parent's client area.
type StylePatcher struct {
	windows domain.WindowSystem
	logger  *zap.Logger
}

// NewStylePatcher creates a new style patcher.
func NewStylePatcher(ws domain.WindowSystem, logger *zap.Logger) *StylePatcher {
	return &StylePatcher{
		windows: ws,
		logger:  logger,
	}
}

// Patch applies the style change and the resize. Each step is best effort:
// a failure (usually a destroyed window) is logged and the next step still runs.
func (p *StylePatcher) Patch(h domain.Handle) {
	log := p.logger.With(zap.Uintptr("hwnd", uintptr(h)))

	style, err := p.windows.Style(h)
	if err != nil {
		log.Debug("failed to read style", zap.Error(err))
	} else {
		patched := style.Patched()
		if err := p.windows.SetStyle(h, patched); err != nil {
			log.Debug("failed to write style", zap.Error(err))
		} else {
			log.Debug("style updated",
				zap.Bool("had_caption", style.Has(domain.StyleCaption)),
				zap.Uint32("from", uint32(style)),
				zap.Uint32("to", uint32(patched)))
		}
	}

	// Style writes alone do not repaint the non-client frame
	if err := p.windows.SetPosition(h, 0, 0, 0, 0, domain.FrameChangeFlags); err != nil {
		log.Debug("failed to refresh frame", zap.Error(err))
	}

	parent, ok := p.windows.Parent(h)
	if !ok {
		log.Debug("window has no parent, skipping resize")
		return
	}

	rect, err := p.windows.ClientRect(parent)
	if err != nil {
		log.Debug("failed to read parent client rect",
			zap.Uintptr("parent", uintptr(parent)),
			zap.Error(err))
		return
	}

	if err := p.windows.SetPosition(h, 0, 0, rect.Width(), rect.Height(), domain.PosNoZOrder); err != nil {
		log.Debug("failed to resize window", zap.Error(err))
		return
	}

	log.Info("patched window",
		zap.Int32("width", rect.Width()),
		zap.Int32("height", rect.Height()))
}

// Ensure StylePatcher implements domain.Patcher.
var _ domain.Patcher = (*StylePatcher)(nil)
