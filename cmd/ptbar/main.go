// Package main is the CLI entry point for ptbar.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/eliteGoblin/focusd/pt_titlebar/internal/infra"
	"github.com/eliteGoblin/focusd/pt_titlebar/internal/policy"
	"github.com/eliteGoblin/focusd/pt_titlebar/internal/usecase"
)

var (
	// Version info (set via ldflags)
	Version   = "0.1.0"
	Commit    = "dev"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ptbar",
	Short: "Remove the legacy title bar from Pro Tools editor windows",
	Long: `ptbar waits for Pro Tools to start, waits for its Edit and Mix windows,
strips their caption and border, fits them to the main window and
maximizes Pro Tools. It runs once and exits.

Start it before or after Pro Tools; it polls until the windows exist.`,
	Args:         cobra.NoArgs,
	Version:      Version,
	SilenceUsage: true,
	RunE:         runPatch,
}

var targetCmd = &cobra.Command{
	Use:   "target",
	Short: "Show the window matching rules",
	Long:  `Shows the title, class names and process names used to find Pro Tools.`,
	Args:  cobra.NoArgs,
	Run:   runTarget,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check whether Pro Tools and its editor windows are present",
	Long:  `Scans processes and windows once without changing anything.`,
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Prints version, commit, and build time. Use --json for machine-readable output.`,
	Run:   runVersion,
}

var (
	debugLogging bool
	jsonOutput   bool
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugLogging, "debug", false, "Enable debug logging")
	versionCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output version info as JSON")

	rootCmd.AddCommand(targetCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}

func runPatch(cmd *cobra.Command, args []string) error {
	logger := createLogger()
	defer func() { _ = logger.Sync() }()

	windows, err := infra.NewWindowSystem()
	if err != nil {
		logger.Error("window system unavailable", zap.Error(err))
		return err
	}

	target := policy.ToTarget(policy.NewProToolsPolicy())
	patcher := usecase.NewStylePatcher(windows, logger)

	config := usecase.DefaultOrchestratorConfig(target)
	config.OnState = func(s usecase.State) {
		logger.Info("state", zap.String("state", string(s)))
	}
	orchestrator := usecase.NewOrchestrator(
		config,
		target,
		windows,
		infra.NewProcessInspector(),
		patcher,
		logger,
	)

	// External termination is the only way out of an endless search
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := orchestrator.Run(ctx)
	if err != nil {
		logger.Warn("run ended before patching", zap.Error(err))
		return err
	}

	logger.Info("patch completed",
		zap.String("target", result.TargetID),
		zap.String("title", result.MainTitle),
		zap.Int("pid", result.PID),
		zap.String("process", result.ProcessName),
		zap.Int("search_attempts", result.SearchAttempts),
		zap.Int("child_attempts", result.ChildAttempts),
		zap.Int("patched", len(result.PatchedWindows)),
		zap.Int("ignored", len(result.IgnoredWindows)),
		zap.Int64("duration_ms", result.DurationMs))

	return nil
}

func runTarget(cmd *cobra.Command, args []string) {
	p := policy.NewProToolsPolicy()

	fmt.Println("\n=== Target ===")
	fmt.Printf("\n[%s] %s\n", p.ID(), p.Name())
	fmt.Printf("  Main window title contains: %q\n", p.TitleFragment())
	fmt.Printf("  Patched child class:        %q\n", p.DecorationClass())
	fmt.Printf("  Ready when a child class contains: %q\n", p.SignalFragment())
	fmt.Println("  Processes:")
	for _, proc := range p.ProcessPatterns() {
		fmt.Printf("    - %s\n", proc)
	}
	fmt.Printf("  Poll interval: %s\n", p.PollInterval())
	fmt.Println("\n==============")
}

func runStatus(cmd *cobra.Command, args []string) error {
	logger := createLogger()
	defer func() { _ = logger.Sync() }()

	windows, err := infra.NewWindowSystem()
	if err != nil {
		return fmt.Errorf("window system unavailable: %w", err)
	}

	target := policy.ToTarget(policy.NewProToolsPolicy())
	status := usecase.NewStatusProbe(target, windows, infra.NewProcessInspector(), logger).Check()

	fmt.Println("\n=== ptbar Status ===")
	if len(status.ProcessPIDs) == 0 {
		fmt.Printf("Process: NOT RUNNING\n")
	} else {
		fmt.Printf("Process: RUNNING (pids %v)\n", status.ProcessPIDs)
	}

	if !status.WindowFound {
		fmt.Println("Main window: NOT FOUND")
		fmt.Println("====================")
		return nil
	}

	fmt.Printf("Main window: %#x %q\n", uintptr(status.MainWindow), status.MainTitle)
	fmt.Printf("Editor windows: %d\n", status.DecorationChildren)
	if status.SignalChildren == 0 {
		fmt.Println("Children: still loading")
	} else {
		fmt.Println("Children: ready")
	}
	fmt.Println("====================")
	return nil
}

// createLogger writes JSON logs to stderr and a file in the temp directory.
func createLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stderr", filepath.Join(os.TempDir(), "ptbar.log")}
	config.ErrorOutputPaths = []string{"stderr"}
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debugLogging {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		// Fallback to stderr only if the log file cannot be opened
		logger, _ = zap.NewProduction()
	}
	return logger
}

func runVersion(cmd *cobra.Command, args []string) {
	if jsonOutput {
		fmt.Printf(`{"version":"%s","commit":"%s","build_time":"%s"}`+"\n",
			Version, Commit, BuildTime)
	} else {
		fmt.Printf("ptbar %s (commit: %s, built: %s)\n",
			Version, Commit, BuildTime)
	}
}
