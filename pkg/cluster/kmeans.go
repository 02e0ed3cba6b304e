// Package cluster partitions pixel sets into colour clusters with a seeded,
// reproducible k-means.
package cluster

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/menta2k/skintone/pkg/types"
)

// ErrInsufficientSamples is returned when there are no pixels to cluster
var ErrInsufficientSamples = errors.New("insufficient samples for clustering")

// Cluster is a centroid colour and the number of pixels assigned to it
type Cluster struct {
	Center [3]float64 `json:"center"`
	Count  int        `json:"count"`
}

// Config holds configuration for k-means clustering
type Config struct {
	K             int
	Restarts      int
	MaxIterations int
	Tolerance     float64
	Seed          uint64
}

// DefaultConfig returns the clustering defaults: five clusters, ten seeded restarts
func DefaultConfig() Config {
	return Config{
		K:             5,
		Restarts:      10,
		MaxIterations: 300,
		Tolerance:     1e-4,
		Seed:          42,
	}
}

// KMeans clusters colours with k-means++ seeding and Lloyd iterations
type KMeans struct {
	config Config
}

// New creates a KMeans with default configuration
func New() *KMeans {
	return &KMeans{config: DefaultConfig()}
}

// NewWithConfig creates a KMeans with custom configuration.
// Zero restarts or iterations are replaced by the defaults.
func NewWithConfig(config Config) *KMeans {
	def := DefaultConfig()
	if config.Restarts < 1 {
		config.Restarts = def.Restarts
	}
	if config.MaxIterations < 1 {
		config.MaxIterations = def.MaxIterations
	}
	if config.Tolerance < 0 {
		config.Tolerance = def.Tolerance
	}
	return &KMeans{config: config}
}

// Config returns the configuration in use
func (km *KMeans) Config() Config {
	return km.config
}

// Partition splits pixels into clusters. When the set has fewer distinct colours
// than K, K is reduced to the distinct count. The result is a pure function of
// pixels and the configured seed.
func (km *KMeans) Partition(pixels []types.RGB) ([]Cluster, error) {
	if km.config.K < 1 {
		return nil, fmt.Errorf("%w: k must be at least 1, got %d", ErrInsufficientSamples, km.config.K)
	}
	if len(pixels) == 0 {
		return nil, fmt.Errorf("%w: empty pixel set", ErrInsufficientSamples)
	}

	k := km.config.K
	if distinct := countDistinct(pixels); distinct < k {
		k = distinct
	}

	points := make([][]float64, len(pixels))
	for i, p := range pixels {
		points[i] = []float64{float64(p.R), float64(p.G), float64(p.B)}
	}

	tol := km.config.Tolerance * meanVariance(points)
	rng := rand.New(rand.NewPCG(km.config.Seed, km.config.Seed))

	var best *run
	for i := 0; i < km.config.Restarts; i++ {
		centers := seedCenters(points, k, rng)
		r := lloyd(points, centers, km.config.MaxIterations, tol)
		if best == nil || r.inertia < best.inertia {
			best = r
		}
	}

	clusters := make([]Cluster, k)
	for i, c := range best.centers {
		clusters[i].Center = [3]float64{c[0], c[1], c[2]}
	}
	for _, l := range best.labels {
		clusters[l].Count++
	}
	return clusters, nil
}

// Rank orders clusters by descending population. Ties keep their original order.
func Rank(clusters []Cluster) []Cluster {
	ranked := make([]Cluster, len(clusters))
	copy(ranked, clusters)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

type run struct {
	centers [][]float64
	labels  []int
	inertia float64
}

// seedCenters picks k initial centers with k-means++: the first uniformly, each
// next one with probability proportional to its squared distance from the nearest
// center chosen so far.
func seedCenters(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	centers := make([][]float64, 0, k)
	first := points[rng.IntN(len(points))]
	centers = append(centers, append([]float64(nil), first...))

	dist := make([]float64, len(points))
	for i, p := range points {
		dist[i] = sqDist(p, centers[0])
	}

	for len(centers) < k {
		idx, ok := sampleuv.NewWeighted(dist, rng).Take()
		if !ok {
			idx = rng.IntN(len(points))
		}
		c := append([]float64(nil), points[idx]...)
		centers = append(centers, c)
		for i, p := range points {
			if d := sqDist(p, c); d < dist[i] {
				dist[i] = d
			}
		}
	}
	return centers
}

func lloyd(points, centers [][]float64, maxIter int, tol float64) *run {
	k := len(centers)
	labels := make([]int, len(points))
	dist := make([]float64, len(points))
	sums := make([][]float64, k)
	for i := range sums {
		sums[i] = make([]float64, 3)
	}
	counts := make([]int, k)

	for iter := 0; iter < maxIter; iter++ {
		assign(points, centers, labels, dist)

		for i := range sums {
			floats.Scale(0, sums[i])
			counts[i] = 0
		}
		for i, p := range points {
			floats.Add(sums[labels[i]], p)
			counts[labels[i]]++
		}

		shift := 0.0
		for c := range centers {
			next := make([]float64, 3)
			if counts[c] == 0 {
				// An empty cluster takes over the point farthest from its own center.
				far := floats.MaxIdx(dist)
				copy(next, points[far])
				dist[far] = 0
			} else {
				for i := range next {
					next[i] = sums[c][i] / float64(counts[c])
				}
			}
			shift += sqDist(next, centers[c])
			centers[c] = next
		}

		if shift <= tol {
			break
		}
	}

	assign(points, centers, labels, dist)
	return &run{centers: centers, labels: labels, inertia: floats.Sum(dist)}
}

// assign labels each point with its nearest center and records the squared distance
func assign(points, centers [][]float64, labels []int, dist []float64) {
	for i, p := range points {
		best, bestDist := 0, math.Inf(1)
		for c, center := range centers {
			if d := sqDist(p, center); d < bestDist {
				best, bestDist = c, d
			}
		}
		labels[i] = best
		dist[i] = bestDist
	}
}

func sqDist(a, b []float64) float64 {
	d := floats.Distance(a, b, 2)
	return d * d
}

func meanVariance(points [][]float64) float64 {
	col := make([]float64, len(points))
	total := 0.0
	for ch := 0; ch < 3; ch++ {
		for i, p := range points {
			col[i] = p[ch]
		}
		total += stat.PopVariance(col, nil)
	}
	return total / 3
}

func countDistinct(pixels []types.RGB) int {
	seen := make(map[types.RGB]struct{})
	for _, p := range pixels {
		seen[p] = struct{}{}
	}
	return len(seen)
}
