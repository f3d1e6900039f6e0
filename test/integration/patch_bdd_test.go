//go:build integration

package integration

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/eliteGoblin/focusd/pt_titlebar/internal/domain"
	"github.com/eliteGoblin/focusd/pt_titlebar/internal/policy"
	"github.com/eliteGoblin/focusd/pt_titlebar/internal/usecase"
	"github.com/eliteGoblin/focusd/pt_titlebar/test/fixtures"
)

var _ = Describe("Pro Tools title bar removal", func() {
	var (
		desktop *fixtures.FakeDesktop
		target  domain.Target
		states  []usecase.State
		config  usecase.OrchestratorConfig
		logger  *zap.Logger
	)

	newOrchestrator := func() *usecase.Orchestrator {
		return usecase.NewOrchestrator(
			config,
			target,
			desktop,
			nil,
			usecase.NewStylePatcher(desktop, logger),
			logger,
		)
	}

	BeforeEach(func() {
		desktop = fixtures.NewFakeDesktop()
		target = policy.ToTarget(policy.NewProToolsPolicy())
		states = nil
		logger = zap.NewNop()
		config = usecase.OrchestratorConfig{
			Retry: usecase.RetryPolicy{
				Interval:    time.Millisecond,
				MaxAttempts: 50,
			},
			OnState: func(s usecase.State) {
				states = append(states, s)
			},
		}
	})

	Describe("Run", func() {
		Context("when Pro Tools is already open with its editor windows", func() {
			var mainWnd, edit, mix, toolbar domain.Handle

			BeforeEach(func() {
				desktop.AddTopLevel("Explorer", "CabinetWClass", domain.Rect{Right: 640, Bottom: 480})
				mainWnd = desktop.AddTopLevel("Pro Tools Studio", "DigiAppWndClass", domain.Rect{Right: 1920, Bottom: 1040})
				edit = desktop.AddChild(mainWnd, "DigiMDIWndClass")
				mix = desktop.AddChild(mainWnd, "DigiMDIWndClass")
				toolbar = desktop.AddChild(mainWnd, "UnrelatedClass")
			})

			It("should strip the caption of every editor window", func() {
				_, err := newOrchestrator().Run(context.Background())
				Expect(err).NotTo(HaveOccurred())

				for _, h := range []domain.Handle{edit, mix} {
					style := desktop.Window(h).Style
					Expect(style.Has(domain.StyleCaption)).To(BeFalse())
					Expect(style.Has(domain.StyleSysMenu | domain.StyleMinimizeBox | domain.StyleMaximizeBox)).To(BeTrue())
				}
			})

			It("should fit every editor window to the main client area", func() {
				_, err := newOrchestrator().Run(context.Background())
				Expect(err).NotTo(HaveOccurred())

				for _, h := range []domain.Handle{edit, mix} {
					calls := desktop.Positions(h)
					Expect(calls).To(HaveLen(2))
					Expect(calls[1].X).To(BeZero())
					Expect(calls[1].Y).To(BeZero())
					Expect(calls[1].Width).To(Equal(int32(1920)))
					Expect(calls[1].Height).To(Equal(int32(1040)))
				}
			})

			It("should leave unrelated children alone", func() {
				before := desktop.Window(toolbar).Style

				_, err := newOrchestrator().Run(context.Background())
				Expect(err).NotTo(HaveOccurred())

				Expect(desktop.Window(toolbar).Style).To(Equal(before))
				Expect(desktop.Positions(toolbar)).To(BeEmpty())
			})

			It("should maximize the main window last", func() {
				result, err := newOrchestrator().Run(context.Background())
				Expect(err).NotTo(HaveOccurred())

				Expect(desktop.Window(mainWnd).Maximized).To(BeTrue())
				Expect(states).To(Equal([]usecase.State{
					usecase.StateSearchingProcess,
					usecase.StateAwaitingChildren,
					usecase.StatePatching,
					usecase.StateFinalizing,
					usecase.StateDone,
				}))
				Expect(result.PatchedWindows).To(ConsistOf(edit, mix))
			})

			It("should give the same styles when run twice", func() {
				_, err := newOrchestrator().Run(context.Background())
				Expect(err).NotTo(HaveOccurred())
				first := desktop.Window(edit).Style

				states = nil
				_, err = newOrchestrator().Run(context.Background())
				Expect(err).NotTo(HaveOccurred())

				Expect(desktop.Window(edit).Style).To(Equal(first))
			})
		})

		Context("when Pro Tools starts after the tool", func() {
			It("should keep searching until the window appears", func() {
				desktop.BeforeTopLevelScan = func(scan int) {
					if scan == 4 {
						mainWnd := desktop.AddTopLevel("Pro Tools", "DigiAppWndClass", domain.Rect{Right: 800, Bottom: 600})
						desktop.AddChild(mainWnd, "DigiMDIWndClass")
					}
				}

				result, err := newOrchestrator().Run(context.Background())
				Expect(err).NotTo(HaveOccurred())
				Expect(result.SearchAttempts).To(Equal(4))
				Expect(result.PatchedWindows).To(HaveLen(1))
			})
		})

		Context("when the editor windows are created late", func() {
			It("should not patch before a Digi child exists", func() {
				mainWnd := desktop.AddTopLevel("Pro Tools", "DigiAppWndClass", domain.Rect{Right: 800, Bottom: 600})
				desktop.BeforeChildScan = func(scan int) {
					if scan == 6 {
						desktop.AddChild(mainWnd, "DigiMDIWndClass")
					}
				}

				result, err := newOrchestrator().Run(context.Background())
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ChildAttempts).To(Equal(6))
				Expect(result.PatchedWindows).To(HaveLen(1))
			})
		})

		Context("when an editor window is closed while patching", func() {
			It("should still finish and maximize", func() {
				mainWnd := desktop.AddTopLevel("Pro Tools", "DigiAppWndClass", domain.Rect{Right: 800, Bottom: 600})
				desktop.AddChild(mainWnd, "DigiMDIWndClass")
				doomed := desktop.AddChild(mainWnd, "DigiMDIWndClass")
				config.OnState = func(s usecase.State) {
					if s == usecase.StatePatching {
						desktop.Destroy(doomed)
					}
				}

				result, err := newOrchestrator().Run(context.Background())
				Expect(err).NotTo(HaveOccurred())
				Expect(result.PatchedWindows).To(HaveLen(1))
				Expect(desktop.StyleWrites(doomed)).To(BeZero())
				Expect(desktop.Window(mainWnd).Maximized).To(BeTrue())
			})
		})

		Context("when Pro Tools never starts", func() {
			It("should stay in the search state", func() {
				desktop.AddTopLevel("Notepad", "Notepad", domain.Rect{Right: 100, Bottom: 100})

				_, err := newOrchestrator().Run(context.Background())
				Expect(err).To(MatchError(usecase.ErrAttemptsExhausted))
				Expect(states).To(Equal([]usecase.State{usecase.StateSearchingProcess}))
				Expect(desktop.TopLevelScans()).To(Equal(50))
			})
		})
	})
})
