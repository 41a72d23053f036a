package metrics

import (
	"time"

	"github.com/cuemby/volgen/pkg/voldesc"
)

// Collector periodically refreshes gauge-style metrics from a
// voldesc.Registry. volgen's core generation path is itself
// single-threaded per invocation (spec.md §5); Collector exists for a
// long-running "volgen serve" process that exposes /metrics between
// generation runs and wants an up-to-date volume count without
// re-deriving it on every scrape.
type Collector struct {
	registry voldesc.Registry
	stopCh   chan struct{}
}

// NewCollector creates a collector over registry.
func NewCollector(registry voldesc.Registry) *Collector {
	return &Collector{
		registry: registry,
		stopCh:   make(chan struct{}),
	}
}

// Start begins collecting on a fixed interval, in a background
// goroutine, collecting once immediately before the first tick.
func (c *Collector) Start() {
	ticker := time.NewTicker(15 * time.Second)
	go func() {
		c.collect()
		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopCh:
				ticker.Stop()
				return
			}
		}
	}()
}

// Stop halts the background collection goroutine.
func (c *Collector) Stop() {
	close(c.stopCh)
}

func (c *Collector) collect() {
	volumes, err := c.registry.ListVolumes()
	if err != nil {
		UpdateComponent("registry", false, err.Error())
		return
	}
	UpdateComponent("registry", true, "")

	started := 0
	for _, v := range volumes {
		if v.Status == voldesc.StatusStarted {
			started++
		}
	}
	VolumesStarted.Set(float64(started))
	VolumesTotal.Set(float64(len(volumes)))
}
