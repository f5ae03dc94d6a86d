package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var aggregateJoinsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "reloop_aggregate_joins_total",
	Help: "Total home view fan-outs by outcome",
}, []string{"outcome"})
