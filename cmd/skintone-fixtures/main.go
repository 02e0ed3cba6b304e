package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/menta2k/skintone/internal/utils"
	"github.com/menta2k/skintone/pkg/fixture"
)

var (
	outDir   string
	ext      string
	size     int
	quality  int
	lossless bool
	force    bool
)

var rootCmd = &cobra.Command{
	Use:   "skintone-fixtures",
	Short: "Write solid-colour reference images for the skin tone detector",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeFixtures()
	},
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	rootCmd.Flags().StringVar(&ext, "ext", "png", "output format: png|jpg|webp")
	rootCmd.Flags().IntVar(&size, "size", 200, "image width and height in pixels")
	rootCmd.Flags().IntVar(&quality, "quality", 95, "JPEG/WebP quality (1-100)")
	rootCmd.Flags().BoolVar(&lossless, "lossless", true, "WebP lossless mode")
	rootCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing files")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("writing fixtures failed")
		os.Exit(1)
	}
}

func writeFixtures() error {
	if err := utils.EnsureDir(outDir); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	opts := fixture.SaveOptions{Format: ext, Quality: quality, Lossless: lossless}
	for _, fx := range fixture.Standard() {
		path := utils.GenerateOutputFilename(fx.Name, outDir, ext)
		if utils.FileExists(path) && !force {
			logrus.Warnf("%s exists, skipping (use --force to overwrite)", path)
			continue
		}

		img := fixture.Solid(size, size, fx.Color)
		if err := fixture.Save(img, path, opts); err != nil {
			return fmt.Errorf("failed to save %s: %w", path, err)
		}
		logrus.WithField("color", fx.Color.Hex()).Infof("wrote %s", path)
	}
	return nil
}
