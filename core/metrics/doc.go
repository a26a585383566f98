// Package metrics exposes Prometheus metrics for the Seed Manager.
//
// Metrics live in a private registry rather than the global default one, so
// tests can build as many registries as they need.
//
// # Metrics
//
//   - seed_manager_ingest_loads_total{format,outcome}
//   - seed_manager_ingest_records_total{format}
//   - seed_manager_ingest_load_duration_seconds{format}
//
// # Usage
//
//	reg := metrics.NewRegistry()
//	app.Get("/metrics", reg.Handler())
package metrics
