// Package skintone estimates a person's dominant skin tone from a photo and maps
// it to clothing colour advice.
//
// Basic usage:
//
//	detector := skintone.New()
//	result, err := detector.DetectFile("portrait.jpg")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Line())               // Fair,220,190,170,#dcbeaa
//	fmt.Println(result.Recommendation.Neutrals)
//
// The pipeline runs in fixed stages:
//
// 1. Loader (pkg/loader): decodes the file and normalises it to RGB order
// 2. Region (pkg/region): takes a square crop around the image center
// 3. Skin mask (pkg/skinmask): keeps pixels inside the skin colour range
// 4. Dominant colour (pkg/cluster, pkg/dominant): k-means with a fixed seed,
// then the most populous cluster that looks like skin
// 5. Tone (pkg/tone): six categories by average channel intensity
// 6. Recommendation (pkg/recommend): fixed advice per category
//
// Every stage has an explicit fallback: an empty crop uses the whole image, an
// empty mask uses the unmasked crop, and when no cluster looks like skin the
// largest cluster is used.
package skintone

import (
	"fmt"
	"image"
	"io"

	"github.com/menta2k/skintone/pkg/cluster"
	"github.com/menta2k/skintone/pkg/dominant"
	"github.com/menta2k/skintone/pkg/loader"
	"github.com/menta2k/skintone/pkg/output"
	"github.com/menta2k/skintone/pkg/recommend"
	"github.com/menta2k/skintone/pkg/region"
	"github.com/menta2k/skintone/pkg/skinmask"
	"github.com/menta2k/skintone/pkg/tone"
	"github.com/menta2k/skintone/pkg/types"
)

// Version of the skin tone detector
const Version = "1.0.0"

// Detector runs the skin tone pipeline
type Detector struct {
	loader    *loader.Loader
	extractor *region.Extractor
	mask      *skinmask.Filter
	estimator *dominant.Estimator
}

// New creates a new Detector with default configuration
func New() *Detector {
	return &Detector{
		loader:    loader.New(),
		extractor: region.New(),
		mask:      skinmask.New(),
		estimator: dominant.New(),
	}
}

// NewWithConfig creates a new Detector with custom configuration
func NewWithConfig(loaderConfig loader.Config, regionConfig region.Config, bounds skinmask.Bounds, clusterConfig cluster.Config) *Detector {
	return &Detector{
		loader:    loader.NewWithConfig(loaderConfig),
		extractor: region.NewWithConfig(regionConfig),
		mask:      skinmask.NewWithBounds(bounds),
		estimator: dominant.NewWithConfig(clusterConfig),
	}
}

// Result contains the detected tone and the intermediate decisions behind it
type Result struct {
	Tone           tone.Category     `json:"skin_tone"`
	Color          types.RGB         `json:"color"`
	Hex            string            `json:"hex"`
	Recommendation recommend.Record  `json:"recommendation"`
	Image          loader.ImageInfo  `json:"image"`
	Region         region.Region     `json:"region"`
	MaskFallback   bool              `json:"mask_fallback"`
	SkinMatch      bool              `json:"skin_match"`
	Clusters       []cluster.Cluster `json:"clusters"`
	PixelCount     int               `json:"pixel_count"`
}

// Line formats the result as the one-line detector output
func (r Result) Line() string {
	return output.Format(r.Tone, r.Color)
}

// WriteLine writes the one-line detector output followed by a newline
func (r Result) WriteLine(w io.Writer) error {
	return output.Write(w, r.Tone, r.Color)
}

// LoadImage loads an image from file
func (d *Detector) LoadImage(path string) (*image.NRGBA, error) {
	return d.loader.LoadImage(path)
}

// DetectFile loads an image from file and detects its skin tone
func (d *Detector) DetectFile(path string) (Result, error) {
	img, err := d.loader.LoadImage(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load image: %w", err)
	}
	return d.Detect(img)
}

// DetectReader decodes an image from reader and detects its skin tone
func (d *Detector) DetectReader(reader io.Reader) (Result, error) {
	img, err := d.loader.LoadImageFromReader(reader)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load image: %w", err)
	}
	return d.Detect(img)
}

// Detect runs the pipeline on an already decoded image
func (d *Detector) Detect(img image.Image) (Result, error) {
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Bounds().Min != (image.Point{}) {
		nrgba = loader.Normalize(img)
	}
	if err := d.loader.ValidateImage(nrgba); err != nil {
		return Result{}, err
	}

	crop, reg := d.extractor.Extract(nrgba)
	pixels, maskFallback := d.mask.Pixels(crop)

	est, err := d.estimator.Estimate(pixels)
	if err != nil {
		return Result{}, fmt.Errorf("dominant colour estimation failed: %w", err)
	}

	category := tone.Classify(est.Color)

	return Result{
		Tone:           category,
		Color:          est.Color,
		Hex:            est.Color.Hex(),
		Recommendation: recommend.Lookup(category),
		Image:          loader.GetImageInfo(nrgba),
		Region:         reg,
		MaskFallback:   maskFallback,
		SkinMatch:      est.SkinMatch,
		Clusters:       est.Clusters,
		PixelCount:     len(pixels),
	}, nil
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
