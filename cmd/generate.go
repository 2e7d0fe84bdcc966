package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/apiary-go/googleapis/internal/discovery"
	"github.com/apiary-go/googleapis/internal/gen"
)

var (
	genConfigPath string
	genAPIID      string
	genFile       string
	genOutDir     string
)

func init() {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate client packages from Discovery documents",
		Long: "generate emits one Go client package per configured API. APIs come " +
			"either from a YAML config file (--config) or from a single --api / --file " +
			"argument combined with --out.",
		RunE: runGenerate,
	}

	cmd.Flags().StringVarP(&genConfigPath, "config", "f", "", "generation config file (YAML)")
	cmd.Flags().StringVar(&genAPIID, "api", "", "single api:version id to generate, e.g. apikeys:v2")
	cmd.Flags().StringVar(&genFile, "file", "", "single Discovery document file to generate from")
	cmd.Flags().StringVarP(&genOutDir, "out", "o", ".", "output directory for generated packages")

	rootCmd.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg := &gen.Config{OutDir: genOutDir}
	switch {
	case genConfigPath != "":
		cfg = gen.LoadConfigFromFile(genConfigPath)
		if cfg.OutDir == "" {
			cfg.OutDir = genOutDir
		}
	case genAPIID != "" || genFile != "":
		cfg.APIs = []gen.APIConfig{{ID: genAPIID, File: genFile}}
	default:
		return errors.New("nothing to generate: pass --config, --api or --file")
	}
	if len(cfg.APIs) == 0 {
		return errors.New("config lists no apis")
	}

	dc := discovery.NewClient()
	for _, api := range cfg.APIs {
		doc, err := resolveDocument(ctx, dc, api)
		if err != nil {
			return err
		}
		src, err := gen.Generate(doc, gen.Options{
			PackageName: api.Package,
			GapiImport:  cfg.GapiImport,
		})
		if err != nil {
			return errors.Wrapf(err, "generate %s", doc.ID)
		}

		dir := filepath.Join(cfg.OutDir, doc.Name, doc.Version)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create output directory %s", dir)
		}
		out := filepath.Join(dir, doc.Name+"-gen.go")
		if err := os.WriteFile(out, src, 0o644); err != nil {
			return errors.Wrapf(err, "write %s", out)
		}
		logrus.WithFields(logrus.Fields{
			"api":  doc.ID,
			"file": out,
		}).Info("generated client package")
	}
	return nil
}

func resolveDocument(ctx context.Context, dc *discovery.Client, api gen.APIConfig) (*discovery.Document, error) {
	switch {
	case api.File != "":
		logrus.WithField("file", api.File).Debug("loading discovery document")
		return discovery.LoadFile(api.File)
	case api.ID != "":
		logrus.WithField("api", api.ID).Debug("fetching discovery document")
		return dc.Fetch(ctx, api.ID)
	default:
		return nil, errors.New("api config entry has neither id nor file")
	}
}
