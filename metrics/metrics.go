// Copyright 2026 The Strpack Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package metrics exposes the store's counters as a Prometheus collector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/strpack/strpack"
)

type collector struct {
	strings *prometheus.Desc
	hits    *prometheus.Desc
	regions *prometheus.Desc
	used    *prometheus.Desc
	lost    *prometheus.Desc
}

// NewCollector returns a prometheus.Collector over the store's counters.
// It holds no state of its own; every scrape reads a fresh snapshot.
// Register it with any prometheus.Registerer.
func NewCollector() prometheus.Collector {
	return &collector{
		strings: prometheus.NewDesc(
			"strpack_interned_strings_total",
			"Distinct strings interned over the process lifetime.",
			nil, nil,
		),
		hits: prometheus.NewDesc(
			"strpack_intern_hits_total",
			"Intern calls answered from the canonical set without storing anything.",
			nil, nil,
		),
		regions: prometheus.NewDesc(
			"strpack_regions_total",
			"Regions allocated over the process lifetime, the active one included.",
			nil, nil,
		),
		used: prometheus.NewDesc(
			"strpack_region_bytes_used_total",
			"Bytes committed to records, length prefixes included.",
			nil, nil,
		),
		lost: prometheus.NewDesc(
			"strpack_region_bytes_lost_total",
			"Region tail bytes abandoned by rotation.",
			nil, nil,
		),
	}
}

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.strings
	ch <- c.hits
	ch <- c.regions
	ch <- c.used
	ch <- c.lost
}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	st := strpack.ReadStats()
	ch <- prometheus.MustNewConstMetric(c.strings, prometheus.CounterValue, float64(st.Strings))
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(st.Hits))
	ch <- prometheus.MustNewConstMetric(c.regions, prometheus.CounterValue, float64(st.Regions))
	ch <- prometheus.MustNewConstMetric(c.used, prometheus.CounterValue, float64(st.BytesUsed))
	ch <- prometheus.MustNewConstMetric(c.lost, prometheus.CounterValue, float64(st.BytesLost))
}
