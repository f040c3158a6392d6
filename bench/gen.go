// Package bench generates random travel instances and measures how the
// annealing search behaves on them across repeated seeded runs.
//
// Instances are synthetic: city coordinates are drawn uniformly from a
// square, ticket prices from a log-normal distribution (heavy right tail,
// like real fare tables). Everything is seed-driven so a benchmark line
// can be reproduced bit for bit.
package bench

import (
	"math/rand"

	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/mirkomiorelli/travelopt/costmodel"
	"github.com/mirkomiorelli/travelopt/matrix"
)

// GenConfig bounds the synthetic instance generator.
type GenConfig struct {
	// Side is the edge length of the square the cities are scattered over.
	Side float64
	// PriceMu and PriceSigma parameterize the log-normal fare distribution
	// (of the underlying normal, so the median fare is exp(PriceMu)).
	PriceMu    float64
	PriceSigma float64
}

// DefaultGenConfig spreads cities over a 100x100 square with fares whose
// median sits near 150 and whose tail reaches a few times that.
func DefaultGenConfig() GenConfig {
	return GenConfig{Side: 100, PriceMu: 5.0, PriceSigma: 0.5}
}

// Instance is one generated problem: raw coordinates plus a symmetric fare
// table, ready to be handed to costmodel.Build.
type Instance struct {
	Coords [][2]float64
	Prices *matrix.Dense
}

// RandomInstance draws n cities and an n-by-n fare table from cfg using
// seed. The same (n, cfg, seed) triple always yields the same instance.
func RandomInstance(n int, cfg GenConfig, seed int64) (*Instance, error) {
	if n < 2 {
		return nil, costmodel.ErrTooFewCities
	}

	rng := rand.New(rand.NewSource(seed))

	coords := make([][2]float64, n)
	for i := range coords {
		coords[i][0] = rng.Float64() * cfg.Side
		coords[i][1] = rng.Float64() * cfg.Side
	}

	// Fares come from their own stream so changing the coordinate draw
	// order can never shift the price table.
	fares := distuv.LogNormal{
		Mu:    cfg.PriceMu,
		Sigma: cfg.PriceSigma,
		Src:   exprand.NewSource(uint64(seed) ^ 0x9e3779b97f4a7c15),
	}

	prices, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			p := fares.Rand()
			if err := prices.Set(i, j, p); err != nil {
				return nil, err
			}
			if err := prices.Set(j, i, p); err != nil {
				return nil, err
			}
		}
	}

	return &Instance{Coords: coords, Prices: prices}, nil
}

// Tables builds the normalized cost tables for the instance.
func (in *Instance) Tables() (*costmodel.Tables, error) {
	return costmodel.Build(in.Coords, in.Prices)
}
