package services

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"ml-platform/internal/core/domain"
)

type metricRange struct {
	name     string
	min, max float64
}

// Uniform ranges for a simulated training run. Scores and loss are
// rounded to three decimals.
var simulatedRanges = []metricRange{
	{domain.MetricAccuracy, 0.80, 0.98},
	{domain.MetricPrecision, 0.75, 0.96},
	{domain.MetricRecall, 0.78, 0.97},
	{domain.MetricF1Score, 0.80, 0.96},
	{domain.MetricLoss, 0.10, 0.50},
}

const (
	minTrainingTime = 30
	maxTrainingTime = 300
)

// MetricSampler draws the metrics of a simulated training run.
type MetricSampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewMetricSampler returns a sampler seeded with seed, or from the clock
// when seed is zero.
func NewMetricSampler(seed uint64) *MetricSampler {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &MetricSampler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *MetricSampler) Sample() domain.Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(domain.Metrics, len(simulatedRanges)+1)
	for _, r := range simulatedRanges {
		v := r.min + s.rng.Float64()*(r.max-r.min)
		m[r.name] = math.Round(v*1000) / 1000
	}
	m[domain.MetricTrainingTime] = float64(minTrainingTime + s.rng.IntN(maxTrainingTime-minTrainingTime+1))
	return m
}
