package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/sheets/internal/app"
	"github.com/llehouerou/sheets/internal/config"
	"github.com/llehouerou/sheets/internal/errmsg"
	"github.com/llehouerou/sheets/internal/state"
	"github.com/llehouerou/sheets/internal/stderr"
)

var (
	BuildVersion = "dev"
	cfgFile      string
	rootCmd      = &cobra.Command{
		Use:           "sheets",
		Short:         "Bottom sheets for the terminal",
		Long:          "sheets - draggable bottom sheets with snap positions, presented over a map",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sheets %s (%s)\n", BuildVersion, runtime.Version())
		},
	}
)

var errApp = errors.New("application error")

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file path")
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run is the main entry point of the demo.
func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	// The terminal belongs to the UI, so logs go to a file.
	logPath, err := cfg.LogPath()
	if err != nil {
		return errors.Join(err, errApp)
	}
	logFile, err := config.LoggerInit(logPath, cfg.LogLevel())
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLoggerInit, err))
	}
	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "close log file:", err)
		}
	}(logFile)

	slog.Info("starting sheets", "version", BuildVersion, "go", runtime.Version())

	var stateMgr state.Interface
	if cfg.RememberPositions {
		mgr, err := state.Open()
		if err != nil {
			return errors.New(errmsg.Format(errmsg.OpInitialize, err))
		}
		defer func() {
			if err := mgr.Close(); err != nil {
				slog.Error("close state", "error", err)
			}
		}()
		stateMgr = mgr
	}

	model, err := app.New(cfg, stateMgr)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}

	// Stray writes to fd 2 would corrupt the alt screen.
	if err := stderr.Start(); err != nil {
		slog.Warn("stderr capture unavailable", "error", err)
	}
	defer stderr.Stop()
	go stderr.Forward(cmd.Context())

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)
	if _, err := p.Run(); err != nil {
		slog.Error("program exited", "error", err)
		return errors.Join(err, errApp)
	}
	return nil
}
