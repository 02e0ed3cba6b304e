package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/menta2k/skintone"
	"github.com/menta2k/skintone/internal/config"
	"github.com/menta2k/skintone/internal/utils"
)

var errUsage = errors.New("please provide an image path")

var (
	configPath string
	clusters   int
	seed       uint64
	verbose    bool
	asJSON     bool
)

var rootCmd = &cobra.Command{
	Use:   "skintone <image>",
	Short: "Detect the dominant skin tone in an image",
	Long: `Detects the dominant skin tone in the center of an image and prints one line:

  <skin tone>,<r>,<g>,<b>,<#rrggbb>

Skin tone is one of Very Fair, Fair, Medium, Olive, Brown or Dark.`,
	Version: skintone.Version,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Usage()
			return errUsage
		}
		return nil
	},
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, args[0])
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "JSON configuration file")
	rootCmd.Flags().IntVarP(&clusters, "clusters", "k", 5, "number of colour clusters")
	rootCmd.Flags().Uint64Var(&seed, "seed", 42, "random seed for clustering")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline details to stderr")
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "print the full result with recommendations as JSON")
}

func main() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("skin tone detection failed")
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, path string) error {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if !utils.IsImageFile(path) {
		logrus.Debugf("%s has no known image extension, decoding anyway", path)
	}

	detector := skintone.NewWithConfig(cfg.LoaderOptions(), cfg.RegionOptions(), cfg.MaskBounds(), cfg.ClusterOptions())

	result, err := detect(detector, path)
	if err != nil {
		return err
	}

	cx, cy := result.Region.Center()
	logrus.WithFields(logrus.Fields{
		"image":         fmt.Sprintf("%dx%d", result.Image.Width, result.Image.Height),
		"aspect_ratio":  fmt.Sprintf("%.2f", result.Image.AspectRatio),
		"region":        fmt.Sprintf("%dx%d@%d,%d", result.Region.Width, result.Region.Height, result.Region.X, result.Region.Y),
		"region_center": fmt.Sprintf("%d,%d", cx, cy),
		"region_area":   result.Region.Area(),
		"crop_fallback": result.Region.Fallback,
		"mask_fallback": result.MaskFallback,
		"pixels":        result.PixelCount,
		"clusters":      len(result.Clusters),
		"skin_match":    result.SkinMatch,
	}).Debug("pipeline finished")

	return emit(cmd.OutOrStdout(), result)
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	path := configPath
	if path == "" && utils.FileExists(config.GetConfigPath()) {
		path = config.GetConfigPath()
	}
	if path != "" {
		logrus.Debugf("loading configuration from %s", path)
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("clusters") {
		cfg.Cluster.K = clusters
	}
	if cmd.Flags().Changed("seed") {
		cfg.Cluster.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// detect turns any panic inside the pipeline into an error so the process
// always exits with a diagnostic.
func detect(detector *skintone.Detector, path string) (result skintone.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected failure processing %s: %v", path, r)
		}
	}()
	return detector.DetectFile(path)
}

func emit(w io.Writer, result skintone.Result) error {
	if asJSON {
		data, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	return result.WriteLine(w)
}
