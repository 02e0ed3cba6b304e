package dominant

import (
	"fmt"

	"github.com/menta2k/skintone/pkg/cluster"
	"github.com/menta2k/skintone/pkg/types"
)

// MinSkinRed is the lowest red channel a cluster center may have to count as skin
const MinSkinRed = 60

// Estimator selects the representative colour of a pixel set
type Estimator struct {
	kmeans *cluster.KMeans
}

// Estimate is the outcome of dominant colour selection
type Estimate struct {
	Color types.RGB `json:"color"`
	// Clusters ranked by descending population
	Clusters []cluster.Cluster `json:"clusters"`
	// SkinMatch is false when no cluster looked like skin and the largest one was used
	SkinMatch bool `json:"skin_match"`
}

// New creates an Estimator with the default clustering configuration
func New() *Estimator {
	return &Estimator{kmeans: cluster.New()}
}

// NewWithConfig creates an Estimator with a custom clustering configuration
func NewWithConfig(config cluster.Config) *Estimator {
	return &Estimator{kmeans: cluster.NewWithConfig(config)}
}

// Estimate clusters pixels and picks the dominant colour
func (e *Estimator) Estimate(pixels []types.RGB) (Estimate, error) {
	clusters, err := e.kmeans.Partition(pixels)
	if err != nil {
		return Estimate{}, fmt.Errorf("clustering failed: %w", err)
	}

	ranked := cluster.Rank(clusters)
	color, skin := Select(ranked)

	return Estimate{
		Color:     color,
		Clusters:  ranked,
		SkinMatch: skin,
	}, nil
}

// Select walks clusters in the given order and returns the first center that
// looks like skin (r > g > b and r > 60). Without a match the first cluster is used.
// Channels are truncated toward zero.
func Select(ranked []cluster.Cluster) (types.RGB, bool) {
	if len(ranked) == 0 {
		return types.RGB{}, false
	}
	for _, c := range ranked {
		if LooksLikeSkin(c.Center) {
			return truncate(c.Center), true
		}
	}
	return truncate(ranked[0].Center), false
}

// LooksLikeSkin reports whether a center satisfies r > g > b and r > 60
func LooksLikeSkin(c [3]float64) bool {
	r, g, b := c[0], c[1], c[2]
	return r > g && g > b && r > MinSkinRed
}

func truncate(c [3]float64) types.RGB {
	return types.RGB{R: int(c[0]), G: int(c[1]), B: int(c[2])}
}
