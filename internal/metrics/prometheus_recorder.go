package metrics

import (
	"fmt"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg              *prom.Registry
	treeNodes        *prom.GaugeVec
	lintIssues       *prom.CounterVec
	scaffoldDuration prom.Histogram
	scaffoldFiles    *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics on reg.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		reg: reg,
		treeNodes: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: "ktdocs",
			Name:      "tree_nodes",
			Help:      "Nodes in the documentation tree by kind",
		}, []string{"kind"}),
		lintIssues: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "ktdocs",
			Name:      "lint_issues_total",
			Help:      "Lint issues by rule and severity",
		}, []string{"rule", "severity"}),
		scaffoldDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "ktdocs",
			Name:      "scaffold_duration_seconds",
			Help:      "Duration of scaffold runs",
			Buckets:   prom.DefBuckets,
		}),
		scaffoldFiles: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "ktdocs",
			Name:      "scaffold_files_total",
			Help:      "Scaffold files by kind (page, index) and result (written, unchanged, stale, missing)",
		}, []string{"kind", "result"}),
	}
	reg.MustRegister(pr.treeNodes, pr.lintIssues, pr.scaffoldDuration, pr.scaffoldFiles)
	return pr
}

// Registry returns the registry the recorder's metrics live in.
func (p *PrometheusRecorder) Registry() *prom.Registry {
	return p.reg
}

func (p *PrometheusRecorder) SetTreeShape(groups, pages, symbols int) {
	if p == nil {
		return
	}
	p.treeNodes.WithLabelValues("group").Set(float64(groups))
	p.treeNodes.WithLabelValues("page").Set(float64(pages))
	p.treeNodes.WithLabelValues("symbol").Set(float64(symbols))
}

func (p *PrometheusRecorder) IncLintIssue(rule, severity string) {
	if p == nil {
		return
	}
	p.lintIssues.WithLabelValues(rule, severity).Inc()
}

func (p *PrometheusRecorder) ObserveScaffoldDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.scaffoldDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncScaffoldFile(kind, result string) {
	if p == nil {
		return
	}
	p.scaffoldFiles.WithLabelValues(kind, result).Inc()
}

// WriteTextfile writes the registry in the node_exporter textfile format.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if err := prom.WriteToTextfile(path, p.reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
