package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"grail-tracker/core/config"
	"grail-tracker/core/logger"
	"grail-tracker/core/storage"
	"grail-tracker/feature/catalog"
	"grail-tracker/feature/catalog/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// catalogCmd is the parent command for catalog objects in storage.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the item catalog in the storage bucket",
}

var catalogCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Report catalog objects missing from the bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := openCatalog()
		if err != nil {
			return err
		}
		defer logg.Sync()

		missing, err := svc.Check(cmd.Context())
		if err != nil {
			return fmt.Errorf("catalog check failed: %w", err)
		}
		if len(missing) == 0 {
			logg.Info("Catalog is complete", zap.Int("sections", len(models.Types)))
			return nil
		}
		for _, name := range missing {
			fmt.Printf("missing: %s\n", name)
		}
		return fmt.Errorf("%d catalog objects missing", len(missing))
	},
}

var catalogUploadCmd = &cobra.Command{
	Use:   "upload <dir>",
	Short: "Upload <type>.json files from a directory",
	Long: `Validates and uploads uniques.json, sets.json, runes.json, runewords.json
and bases.json from dir. Missing files are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := openCatalog()
		if err != nil {
			return err
		}
		defer logg.Sync()

		uploaded := 0
		for _, t := range models.Types {
			path := filepath.Join(args[0], string(t)+".json")
			data, err := os.ReadFile(path)
			if errors.Is(err, os.ErrNotExist) {
				logg.Warn("Catalog file not found, skipping", zap.String("file", path))
				continue
			}
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			if err := svc.Upload(cmd.Context(), t, data); err != nil {
				return fmt.Errorf("failed to upload %s: %w", path, err)
			}
			uploaded++
			logg.Info("Uploaded catalog section", zap.String("type", string(t)), zap.String("object", t.ObjectName()))
		}
		if uploaded == 0 {
			return fmt.Errorf("no catalog files found in %s", args[0])
		}
		return nil
	},
}

var catalogRemoveCmd = &cobra.Command{
	Use:   "remove <type>",
	Short: "Delete one catalog section from the bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		types, err := models.ParseTypes(args)
		if err != nil {
			return err
		}
		if !confirmAction(fmt.Sprintf("delete %s", types[0].ObjectName())) {
			return nil
		}
		svc, logg, err := openCatalog()
		if err != nil {
			return err
		}
		defer logg.Sync()
		return svc.Remove(cmd.Context(), types[0])
	},
}

func openCatalog() (*catalog.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return catalog.NewService(store, cfg.Storage.Bucket, 0, logg), logg, nil
}

func init() {
	catalogRemoveCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm (non-interactive)")
	catalogCmd.AddCommand(catalogCheckCmd, catalogUploadCmd, catalogRemoveCmd)
	RootCmd.AddCommand(catalogCmd)
}
