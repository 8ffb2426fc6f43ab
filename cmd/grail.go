package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"grail-tracker/core/reconcile"
	"grail-tracker/feature/grail/formats"
	"grail-tracker/feature/grail/stats"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	jsonOutput      bool
	remainingFilter string
	remainingSets   bool
	exportFormat    string
	exportOut       string
	exportUpload    bool
	importFormat    string
	importDryRun    bool
	yesConfirm      bool
	markUnfound     bool
)

// grailCmd is the parent command for progress operations.
var grailCmd = &cobra.Command{
	Use:   "grail",
	Short: "Show, import and export your grail progress",
	Long: `Works on the progress of client.user_id.

By default the catalog and progress come from the server at client.base_url.
With --local the database and bucket from the server configuration are used
directly.`,
}

var grailStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show completion per category",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer s.Close()

		rows, err := s.service.Stats(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(rows)
		}

		fmt.Println("\n=== Grail Statistics ===")
		for _, r := range rows {
			pct := "n/a"
			if r.Percentage != nil {
				pct = fmt.Sprintf("%d%%", *r.Percentage)
			}
			fmt.Printf("%-15s %4d / %-4d %s\n", r.Label+":", r.Found, r.Total, pct)
		}
		return nil
	},
}

var grailRemainingCmd = &cobra.Command{
	Use:   "remaining",
	Short: "List bases that still have items to find",
	Long: `Groups items by base type and lists the ones not found yet.

  # Only weapons and armor
  grail remaining --filter weapons,armor

  # Set items instead of uniques
  grail remaining --sets`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := stats.ParseFilter(remainingFilter)
		if err != nil {
			return err
		}

		s, err := openSession(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer s.Close()

		view, err := s.service.Remaining(cmd.Context(), filter)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(view)
		}

		groups := view.Uniques
		if remainingSets {
			groups = view.Sets
		}
		shown := 0
		for _, g := range groups {
			if g.Hide {
				continue
			}
			shown++
			fmt.Printf("%s (%s) %d/%d: %s\n", g.Base, g.Bucket,
				len(g.FoundItems), len(g.FoundItems)+len(g.NotFoundItems),
				strings.Join(g.NotFoundItems, ", "))
		}
		s.logger.Info("Remaining bases listed", zap.Int("shown", shown), zap.Int("total", len(groups)))
		return nil
	},
}

var grailExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export progress to a file",
	Long: `Writes the found items in one of the supported formats.

Formats: backup (lossless), tod2, d2-holy-grail.
The file is named <format>-backup-<date>.<ext> unless --out is a file path.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := formats.ParseFormat(exportFormat)
		if err != nil {
			return err
		}

		s, err := openSession(cmd.Context(), exportUpload)
		if err != nil {
			return err
		}
		defer s.Close()

		exp, err := s.service.Export(cmd.Context(), f)
		if err != nil {
			return err
		}

		path := exp.Filename
		if exportOut != "" {
			path = exportOut
			if info, err := os.Stat(exportOut); err == nil && info.IsDir() {
				path = filepath.Join(exportOut, exp.Filename)
			}
		}
		if err := os.WriteFile(path, exp.Data, 0644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		s.logger.Info("Export written", zap.String("format", string(f)), zap.String("file", path))

		if exportUpload {
			name, err := s.service.UploadExport(cmd.Context(), exp)
			if err != nil {
				return err
			}
			fmt.Printf("Uploaded to %s/%s\n", s.cfg.Storage.Bucket, name)
		}
		fmt.Printf("Exported to %s\n", path)
		return nil
	},
}

var grailImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import progress from a file",
	Long: `Reads a backup, tod2 or d2-holy-grail file and adds the items it marks
as found. Items already found are left alone and nothing is ever removed.

  # Show what would change
  grail import --format tod2 --dry-run grail.txt

  # Apply without the prompt
  grail import --format tod2 --yes grail.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := formats.ParseFormat(importFormat)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read import file: %w", err)
		}

		s, err := openSession(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer s.Close()

		plan, err := s.service.PlanImport(cmd.Context(), f, data)
		if err != nil {
			return err
		}
		printImportReport(s.logger, plan)

		if importDryRun {
			s.logger.Info("Dry-run mode: No changes were made.")
			return nil
		}
		if len(plan.NotFound) == 0 {
			s.logger.Info("Nothing new to import.")
			return nil
		}
		if !confirmAction(fmt.Sprintf("add %d found items", len(plan.NotFound))) {
			s.logger.Warn("Import cancelled by user. No changes were made.")
			return nil
		}

		applied, err := s.service.ApplyImport(cmd.Context(), plan, reconcile.Options{Confirmed: true})
		if err != nil {
			return err
		}
		s.logger.Info("Import applied", zap.Int("added", applied))
		return nil
	},
}

var grailMarkCmd = &cobra.Command{
	Use:   "mark <item key>",
	Short: "Mark one item as found",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), false)
		if err != nil {
			return err
		}
		if err := s.service.Mark(cmd.Context(), args[0], !markUnfound); err != nil {
			_ = s.Close()
			return err
		}
		if err := s.Close(); err != nil {
			return fmt.Errorf("failed to save progress: %w", err)
		}
		fmt.Printf("%s: found=%t\n", args[0], !markUnfound)
		return nil
	},
}

var grailClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every found item",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmAction("delete all progress") {
			return nil
		}
		s, err := openSession(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.service.Clear(cmd.Context()); err != nil {
			return err
		}
		s.logger.Info("Progress cleared", zap.String("user", s.cfg.Client.UserID))
		return nil
	},
}

func init() {
	grailCmd.PersistentFlags().BoolVar(&grailLocal, "local", false, "Use the database and bucket directly instead of the server")

	grailStatsCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print JSON")
	grailRemainingCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print JSON")
	grailRemainingCmd.Flags().StringVar(&remainingFilter, "filter", "", "Comma separated buckets to show (weapons,armor,other)")
	grailRemainingCmd.Flags().BoolVar(&remainingSets, "sets", false, "List set items instead of uniques")

	grailExportCmd.Flags().StringVar(&exportFormat, "format", string(formats.FormatBackup), "Export format")
	grailExportCmd.Flags().StringVar(&exportOut, "out", "", "Output file or directory")
	grailExportCmd.Flags().BoolVar(&exportUpload, "upload", false, "Also store the export in the bucket under exports/")

	grailImportCmd.Flags().StringVar(&importFormat, "format", string(formats.FormatBackup), "Import format")
	grailImportCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Only report what would change")
	grailImportCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm (non-interactive)")

	grailMarkCmd.Flags().BoolVar(&markUnfound, "unfound", false, "Mark as not found instead")
	grailClearCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm (non-interactive)")

	grailCmd.AddCommand(grailStatsCmd, grailRemainingCmd, grailExportCmd, grailImportCmd, grailMarkCmd, grailClearCmd)
	RootCmd.AddCommand(grailCmd)
}

// printImportReport logs the plan summary and a sample of skipped references.
func printImportReport(l *zap.Logger, plan *reconcile.Plan) {
	s := plan.Summary
	l.Info("Import report",
		zap.String("format", plan.Format),
		zap.Int("total", s.Total),
		zap.Int("already_found", s.Found),
		zap.Int("new", s.NotFound),
		zap.Int("skipped", s.Skipped),
	)

	maxShow := min(5, len(plan.Skipped))
	for _, sk := range plan.Skipped[:maxShow] {
		l.Info("Skipped entry", zap.String("ref", sk.Ref), zap.String("reason", sk.Reason))
	}
	if len(plan.Skipped) > maxShow {
		l.Info("Additional skipped entries not shown", zap.Int("count", len(plan.Skipped)-maxShow))
	}
}

// confirmAction prompts the user for confirmation or uses the --yes flag.
func confirmAction(what string) bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Printf("\nType 'yes' to %s: ", what)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
