package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"home-maintenance-server/metrics"
	"home-maintenance-server/models"
)

// StatusCounter reports how many bookings are in each lifecycle state
type StatusCounter interface {
	CountByStatus(ctx context.Context) (map[models.RequestStatus]int64, error)
}

// ClientCounter reports how many admin feed connections are open
type ClientCounter interface {
	ClientCount() int
}

// StatsJob refreshes the booking gauges on a fixed interval
type StatsJob struct {
	counter  StatusCounter
	clients  ClientCounter
	interval time.Duration
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewStatsJob creates a new stats job. clients may be nil.
func NewStatsJob(counter StatusCounter, clients ClientCounter, interval time.Duration) *StatsJob {
	if interval <= 0 {
		interval = time.Minute
	}
	return &StatsJob{
		counter:  counter,
		clients:  clients,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start refreshes once and then keeps refreshing until Stop
func (j *StatsJob) Start() {
	go j.run()
	log.Info().Dur("interval", j.interval).Msg("🚀 Stats job started")
}

// Stop stops the stats job. It is safe to call more than once.
func (j *StatsJob) Stop() {
	j.stopOnce.Do(func() {
		close(j.stopChan)
		log.Info().Msg("🛑 Stats job stopped")
	})
}

func (j *StatsJob) run() {
	j.Refresh(context.Background())

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.Refresh(context.Background())
		case <-j.stopChan:
			return
		}
	}
}

// Refresh reads the current counts and publishes them as gauges
func (j *StatsJob) Refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	counts, err := j.counter.CountByStatus(ctx)
	if err != nil {
		log.Error().Err(err).Msg("❌ Error counting bookings by status")
		return
	}
	for status, n := range counts {
		metrics.BookingsByStatus.WithLabelValues(string(status)).Set(float64(n))
	}

	if j.clients != nil {
		metrics.AdminFeedClients.Set(float64(j.clients.ClientCount()))
	}
}
