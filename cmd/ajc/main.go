// Command ajc is the AJC International logistics portal: an interactive
// terminal dashboard over the hosted inventory/shipment backend, plus a
// static-asset server for the built web frontend.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gustavoarielrecha-beep/AJC-POC/cmd/ajc/dashboard"
	"github.com/gustavoarielrecha-beep/AJC-POC/internal/bot"
	"github.com/gustavoarielrecha-beep/AJC-POC/internal/commands"
	"github.com/gustavoarielrecha-beep/AJC-POC/internal/config"
	"github.com/gustavoarielrecha-beep/AJC-POC/internal/logging"
	"github.com/gustavoarielrecha-beep/AJC-POC/internal/server"
	"github.com/gustavoarielrecha-beep/AJC-POC/internal/session"
	"github.com/gustavoarielrecha-beep/AJC-POC/internal/snapshot"
	"github.com/gustavoarielrecha-beep/AJC-POC/internal/supabase"
)

var version = "1.0.0"

// transcriptSessionID keys the persisted chat transcript. A stable id means
// the conversation picks up where it left off after a restart.
const transcriptSessionID = "portal"

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "ajc",
	Short: "AJC International - Unified Logistics Portal",
	Long: `The AJC portal authenticates against the hosted backend, renders the
inventory and shipment dashboards, and embeds the AJC-Bot assistant.

Run without arguments to start the interactive dashboard.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Initialize(verbose); err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the built web frontend over HTTP/HTTPS",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.Static(ctx, cfg.Serve)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the portal version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ajc %s\n", version)
	},
}

func runDashboard() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	backend := supabase.New(cfg.Supabase.URL, cfg.Supabase.AnonKey)
	data := snapshot.NewStore()
	refresher := snapshot.NewRefresher(backend, data)
	sessions := session.NewStore(backend, refresher.Refresh)
	cmds := commands.New(backend, refresher.Refresh)

	log := logging.Get(logging.CategoryUI)

	var transcripts *bot.TranscriptStore
	if cfg.TranscriptPath != "" {
		transcripts, err = bot.NewTranscriptStore(cfg.TranscriptPath)
		if err != nil {
			log.Warn("chat transcript store unavailable", zap.Error(err))
			transcripts = nil
		}
	}
	defer func() {
		if transcripts != nil {
			_ = transcripts.Close()
		}
	}()

	var generator bot.Generator
	if cfg.Generative.APIKey != "" {
		g, err := bot.NewGenAIGenerator(context.Background(), cfg.Generative.APIKey)
		if err != nil {
			log.Warn("generative client unavailable, chat will use fallback", zap.Error(err))
		} else {
			generator = g
		}
	} else {
		log.Warn("no generative API key configured, chat will use fallback")
	}

	assistant := bot.NewAssistant(generator, data, transcripts, transcriptSessionID)
	if cfg.Generative.Model != "" {
		assistant.SetModel(cfg.Generative.Model)
	}

	model := dashboard.New(backend, sessions, data, refresher, cmds, assistant)
	defer model.Shutdown()

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "ajc.yaml", "path to the portal config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(serveCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
