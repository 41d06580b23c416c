// Package main provides the kraamlog backend CLI. The browser UI talks
// to the serve command over localhost REST.
package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkuiper/kraamlog/cmd/kraamlog/handlers"
	"github.com/mkuiper/kraamlog/internal/config"
	"github.com/mkuiper/kraamlog/internal/data"
	"github.com/mkuiper/kraamlog/internal/logging"
	"github.com/mkuiper/kraamlog/internal/mirror"
	"github.com/mkuiper/kraamlog/internal/store"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

func main() {
	var configPath string

	root := &cobra.Command{
		Use:   "kraamlog",
		Short: "Postpartum care tracking backend",
		Long:  "Kraamlog tracks newborn and maternal observations, raises threshold alerts and derives follow-up tasks for the kraamhulp.",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to the YAML config file")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the localhost REST API for the browser UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export all data as pretty-printed JSON (stdout when no file given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) == 1 {
				target = args[0]
			}
			return runExport(configPath, target)
		},
	}

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all data with a previously exported JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(configPath, args[0])
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Erase all data (irreversible)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClear(configPath, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "kraamlog", version)
		},
	}

	root.AddCommand(serveCmd, exportCmd, importCmd, clearCmd, versionCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup wires config, logging, store, mirror and repository.
func setup(configPath string) (*data.Repository, config.Config, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, cfg, nil, err
	}
	logging.Init(os.Stdout, logging.LogLevel(strings.ToUpper(cfg.LogLevel)))

	var s store.Store
	var installationID string
	if cfg.DataDir == "" {
		logging.Warn("no data directory configured, running without persistence")
		s = store.NewNull()
	} else {
		sq, err := store.Open(cfg.DataDir)
		if err != nil {
			// Degrade rather than refuse to start: the UI still works,
			// nothing is persisted.
			logging.Error("cannot open data store, running without persistence", err,
				map[string]interface{}{"data_dir": cfg.DataDir})
			s = store.NewNull()
		} else {
			s = sq
			if id, err := sq.InstallationID(); err == nil {
				installationID = id
			}
		}
	}

	repo := data.New(s)

	m := mirror.New(mirror.Config{
		ServiceURL:     cfg.Mirror.ServiceURL,
		APIKey:         cfg.Mirror.APIKey,
		InstallationID: installationID,
	})
	if m.Enabled() {
		repo.SetMirror(m)
		logging.Info("remote mirror enabled",
			map[string]interface{}{"service_url": cfg.Mirror.ServiceURL})
	}

	cleanup := func() {
		if err := s.Close(); err != nil {
			logging.Error("failed to close store", err)
		}
	}
	return repo, cfg, cleanup, nil
}

func runServe(configPath string) error {
	repo, cfg, cleanup, err := setup(configPath)
	if err != nil {
		return err
	}
	defer cleanup()

	mux := http.NewServeMux()
	handlers.Register(mux, repo)

	logging.Info("kraamlog backend listening",
		map[string]interface{}{"addr": cfg.Listen})
	return http.ListenAndServe(cfg.Listen, mux)
}

func runExport(configPath, target string) error {
	repo, _, cleanup, err := setup(configPath)
	if err != nil {
		return err
	}
	defer cleanup()

	text := repo.ExportData()
	if target == "" {
		fmt.Println(text)
		return nil
	}
	if err := os.WriteFile(target, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Println("Exported to", target)
	return nil
}

func runImport(configPath, source string) error {
	repo, _, cleanup, err := setup(configPath)
	if err != nil {
		return err
	}
	defer cleanup()

	text, err := os.ReadFile(source)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}
	if !repo.ImportData(string(text)) {
		return fmt.Errorf("import rejected: %s is not a valid kraamlog document", source)
	}
	fmt.Println("Imported from", source)
	return nil
}

func runClear(configPath string, in io.Reader, out io.Writer) error {
	repo, _, cleanup, err := setup(configPath)
	if err != nil {
		return err
	}
	defer cleanup()

	fmt.Fprint(out, "This erases all records, tasks and alerts. Type 'yes' to continue: ")
	var answer string
	fmt.Fscanln(in, &answer)
	if answer != "yes" {
		fmt.Fprintln(out, "Aborted.")
		return nil
	}

	repo.ClearAllData()
	fmt.Fprintln(out, "All data cleared.")
	return nil
}
