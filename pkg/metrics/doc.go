// Package metrics exposes Prometheus counters for identifier and document
// validation outcomes. *Metrics satisfies extension.Recorder.
//
//	m := metrics.New(prometheus.DefaultRegisterer)
//	ext, err := extension.New(validate, registry, extension.WithRecorder(m))
package metrics
