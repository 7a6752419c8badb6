package scheduler

import (
	"log"
	"sync"
	"time"

	"github.com/color-game/colorimetry/datastore"
)

// Pruner deletes conversion history older than the retention window.
type Pruner struct {
	ConversionRepo datastore.ConversionRepository
	Retention      time.Duration
	Interval       time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
}

func NewPruner(repo datastore.ConversionRepository, retention, interval time.Duration) *Pruner {
	return &Pruner{
		ConversionRepo: repo,
		Retention:      retention,
		Interval:       interval,
		done:           make(chan struct{}),
	}
}

// Start prunes once immediately, then every Interval until Stop is called
func (p *Pruner) Start() {
	log.Printf("Pruner started. Keeping %v of history, pruning every %v", p.Retention, p.Interval)

	p.PruneOnce(time.Now())

	p.ticker = time.NewTicker(p.Interval)
	go func() {
		for {
			select {
			case now := <-p.ticker.C:
				p.PruneOnce(now)
			case <-p.done:
				return
			}
		}
	}()
}

// Stop stops the pruner. It is safe to call more than once.
func (p *Pruner) Stop() {
	p.stopOnce.Do(func() {
		if p.ticker != nil {
			p.ticker.Stop()
		}
		close(p.done)
		log.Println("Pruner stopped")
	})
}

// PruneOnce deletes every record created before now minus Retention
func (p *Pruner) PruneOnce(now time.Time) (int64, error) {
	cutoff := now.Add(-p.Retention)
	deleted, err := p.ConversionRepo.DeleteOlderThan(cutoff)
	if err != nil {
		log.Printf("Error pruning conversion history: %v", err)
		return 0, err
	}
	if deleted > 0 {
		log.Printf("Pruned %d conversions older than %s", deleted, cutoff.Format(time.RFC3339))
	}
	return deleted, nil
}
