// Package metrics exposes per-run algorithm counters as Prometheus series.
//
// Search results carry their counters as plain struct fields; a Recorder
// folds those counters into process-wide Prometheus metrics labelled by
// algorithm. Construction registers every collector on the supplied
// prometheus.Registerer, so callers control the registry (and tests use a
// private one).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vkarasov/wayfind/astar"
	"github.com/vkarasov/wayfind/bfs"
	"github.com/vkarasov/wayfind/dfs"
	"github.com/vkarasov/wayfind/dijkstra"
	"github.com/vkarasov/wayfind/mst"
)

// Algorithm label values reported by the Recorder.
const (
	labelBFS      = "bfs"
	labelDFS      = "dfs"
	labelDijkstra = "dijkstra"
	labelAStar    = "astar"
)

// Recorder aggregates per-run result counters into Prometheus metrics.
// Safe for concurrent use.
type Recorder struct {
	runs          *prometheus.CounterVec
	nodesVisited  *prometheus.CounterVec
	edgesRelaxed  *prometheus.CounterVec
	heapOps       *prometheus.CounterVec
	decreaseKeys  *prometheus.CounterVec
	negativeSkips *prometheus.CounterVec
	frontierPeak  *prometheus.HistogramVec

	mstWeight    prometheus.Histogram
	disconnected prometheus.Counter
}

// NewRecorder creates a Recorder and registers its collectors on reg.
// Registering two Recorders on the same registry panics with a duplicate
// registration error, matching promauto semantics.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wayfind_runs_total",
			Help: "Total number of completed algorithm runs.",
		}, []string{"algorithm"}),
		nodesVisited: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wayfind_nodes_visited_total",
			Help: "Total nodes settled or expanded across runs.",
		}, []string{"algorithm"}),
		edgesRelaxed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wayfind_edges_relaxed_total",
			Help: "Total edges examined during relaxation or traversal.",
		}, []string{"algorithm"}),
		heapOps: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wayfind_heap_ops_total",
			Help: "Total priority-queue pushes and pops.",
		}, []string{"algorithm"}),
		decreaseKeys: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wayfind_decrease_keys_total",
			Help: "Total successful in-place priority decreases.",
		}, []string{"algorithm"}),
		negativeSkips: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wayfind_negative_edges_skipped_total",
			Help: "Total edges excluded by the negative-weight policy.",
		}, []string{"algorithm"}),
		frontierPeak: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "wayfind_frontier_peak_size",
			Help:    "High-water mark of the queue or stack per run.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 16),
		}, []string{"algorithm"}),
		mstWeight: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "wayfind_mst_total_weight",
			Help:    "Total weight of built spanning trees.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		}),
		disconnected: factory.NewCounter(prometheus.CounterOpts{
			Name: "wayfind_mst_disconnected_total",
			Help: "Total spanning-tree builds that found a disconnected graph.",
		}),
	}
}

// Runs returns the run counter for one algorithm label. Mainly useful for
// inspection without a full registry scrape.
func (r *Recorder) Runs(algorithm string) (prometheus.Counter, error) {
	return r.runs.GetMetricWithLabelValues(algorithm)
}

// Disconnected returns the counter of spanning-tree builds that found a
// disconnected graph.
func (r *Recorder) Disconnected() prometheus.Counter {
	return r.disconnected
}

// ObserveBFS folds one breadth-first traversal into the metrics.
func (r *Recorder) ObserveBFS(res *bfs.Result) {
	if res == nil {
		return
	}
	r.runs.WithLabelValues(labelBFS).Inc()
	r.nodesVisited.WithLabelValues(labelBFS).Add(float64(res.NodesVisited))
	r.heapOps.WithLabelValues(labelBFS).Add(float64(res.QueueOps))
	r.frontierPeak.WithLabelValues(labelBFS).Observe(float64(res.MaxQueueLen))
}

// ObserveDFS folds one depth-first traversal into the metrics.
func (r *Recorder) ObserveDFS(res *dfs.Result) {
	if res == nil {
		return
	}
	r.runs.WithLabelValues(labelDFS).Inc()
	r.nodesVisited.WithLabelValues(labelDFS).Add(float64(res.NodesVisited))
	r.heapOps.WithLabelValues(labelDFS).Add(float64(res.StackOps))
	r.frontierPeak.WithLabelValues(labelDFS).Observe(float64(res.MaxStackLen))
}

// ObserveDijkstra folds one shortest-path run into the metrics.
func (r *Recorder) ObserveDijkstra(res *dijkstra.Result) {
	if res == nil {
		return
	}
	r.runs.WithLabelValues(labelDijkstra).Inc()
	r.nodesVisited.WithLabelValues(labelDijkstra).Add(float64(res.NodesProcessed))
	r.edgesRelaxed.WithLabelValues(labelDijkstra).Add(float64(res.Relaxations))
	r.heapOps.WithLabelValues(labelDijkstra).Add(float64(res.HeapOps))
	r.decreaseKeys.WithLabelValues(labelDijkstra).Add(float64(res.DecreaseKeys))
	r.negativeSkips.WithLabelValues(labelDijkstra).Add(float64(res.NegativeEdgesSkipped))
	r.frontierPeak.WithLabelValues(labelDijkstra).Observe(float64(res.MaxHeapLen))
}

// ObserveAStar folds one goal-directed search into the metrics.
func (r *Recorder) ObserveAStar(res *astar.Result) {
	if res == nil {
		return
	}
	r.runs.WithLabelValues(labelAStar).Inc()
	r.nodesVisited.WithLabelValues(labelAStar).Add(float64(res.NodesExpanded))
	r.heapOps.WithLabelValues(labelAStar).Add(float64(res.HeapOps))
	r.decreaseKeys.WithLabelValues(labelAStar).Add(float64(res.DecreaseKeys))
	r.negativeSkips.WithLabelValues(labelAStar).Add(float64(res.NegativeEdgesSkipped))
	r.frontierPeak.WithLabelValues(labelAStar).Observe(float64(res.MaxOpenLen))
}

// ObserveMST folds one spanning-tree build into the metrics. The algorithm
// label comes from the result itself.
func (r *Recorder) ObserveMST(res *mst.Result) {
	if res == nil {
		return
	}
	r.runs.WithLabelValues(res.Algorithm).Inc()
	r.nodesVisited.WithLabelValues(res.Algorithm).Add(float64(res.NodesInMST))
	r.edgesRelaxed.WithLabelValues(res.Algorithm).Add(float64(res.EdgesConsidered))
	r.heapOps.WithLabelValues(res.Algorithm).Add(float64(res.HeapOps))
	r.mstWeight.Observe(res.TotalWeight)
	if !res.Connected {
		r.disconnected.Inc()
	}
}
