package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// SnapshotCounter reports the number of snapshots per stem.
type SnapshotCounter func() (map[string]int, error)

// Collector exports snapshot counts, computed when scraped.
type Collector struct {
	count SnapshotCounter
	desc  *prometheus.Desc
}

// NewCollector creates a collector backed by count.
func NewCollector(count SnapshotCounter) *Collector {
	return &Collector{
		count: count,
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "snapshots"),
			"Number of snapshot files present for a document stem",
			[]string{"stem"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	counts, err := c.count()
	if err != nil {
		ch <- prometheus.NewInvalidMetric(c.desc, err)
		return
	}
	for stem, n := range counts {
		ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(n), stem)
	}
}
