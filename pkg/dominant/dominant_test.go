package dominant

import (
	"errors"
	"testing"

	"github.com/menta2k/skintone/pkg/cluster"
	"github.com/menta2k/skintone/pkg/types"
)

func TestLooksLikeSkin(t *testing.T) {
	tests := []struct {
		c    [3]float64
		want bool
	}{
		{[3]float64{220, 190, 170}, true},
		{[3]float64{61, 50, 40}, true},
		{[3]float64{60, 50, 40}, false},
		{[3]float64{200, 200, 100}, false},
		{[3]float64{200, 100, 100}, false},
		{[3]float64{20, 30, 200}, false},
	}

	for _, tt := range tests {
		if got := LooksLikeSkin(tt.c); got != tt.want {
			t.Errorf("LooksLikeSkin(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestSelectFirstSkinCluster(t *testing.T) {
	ranked := []cluster.Cluster{
		{Center: [3]float64{20.7, 30.2, 200.9}, Count: 50},
		{Center: [3]float64{180.9, 140.5, 120.99}, Count: 30},
		{Center: [3]float64{220, 190, 170}, Count: 20},
	}

	c, skin := Select(ranked)
	if !skin {
		t.Error("Expected a skin match")
	}
	if c != (types.RGB{R: 180, G: 140, B: 120}) {
		t.Errorf("Expected first skin-like cluster truncated to {180 140 120}, got %v", c)
	}
}

func TestSelectFallsBackToLargest(t *testing.T) {
	ranked := []cluster.Cluster{
		{Center: [3]float64{20.7, 30.2, 200.9}, Count: 50},
		{Center: [3]float64{10, 10, 10}, Count: 30},
	}

	c, skin := Select(ranked)
	if skin {
		t.Error("Did not expect a skin match")
	}
	if c != (types.RGB{R: 20, G: 30, B: 200}) {
		t.Errorf("Expected largest cluster truncated to {20 30 200}, got %v", c)
	}
}

func TestEstimate(t *testing.T) {
	var pixels []types.RGB
	for i := 0; i < 60; i++ {
		pixels = append(pixels, types.RGB{R: 40, G: 60, B: 200})
	}
	for i := 0; i < 40; i++ {
		pixels = append(pixels, types.RGB{R: 180, G: 140, B: 120})
	}

	est, err := New().Estimate(pixels)
	if err != nil {
		t.Fatalf("Estimate failed: %v", err)
	}
	if est.Color != (types.RGB{R: 180, G: 140, B: 120}) {
		t.Errorf("Expected the skin cluster over the larger blue one, got %v", est.Color)
	}
	if !est.SkinMatch {
		t.Error("Expected SkinMatch")
	}
	if len(est.Clusters) != 2 || est.Clusters[0].Count != 60 {
		t.Errorf("Expected clusters ranked by population, got %+v", est.Clusters)
	}
}

func TestEstimateEmpty(t *testing.T) {
	_, err := New().Estimate(nil)
	if !errors.Is(err, cluster.ErrInsufficientSamples) {
		t.Errorf("Expected ErrInsufficientSamples, got %v", err)
	}
}
