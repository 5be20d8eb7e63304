package utils

import "time"

// Stats tracks run-level figures shown next to the grid
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time

	samples int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update folds one completed generation into the stats
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Exponential moving average, seeded by the first sample
	if s.samples == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
	s.samples++
}

// Reset starts the stats over, used when the simulation is reset
func (s *Stats) Reset() {
	*s = Stats{StartTime: time.Now()}
}

// Runtime is the wall time since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
