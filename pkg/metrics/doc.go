/*
Package metrics instruments generation runs with Prometheus metrics,
registered at package init the same way the teacher repo's metrics
package does, plus the health-check machinery ("volgen serve" exposes
/health, /ready, /live the way the teacher's daemon does).

	timer := metrics.NewTimer()
	g, err := topology.BuildClientGraph(vol, vol.Dict)
	timer.ObserveDurationVec(metrics.GraphBuildDuration, "client")

	http.Handle("/metrics", metrics.Handler())
	http.HandleFunc("/health", metrics.HealthHandler())
*/
package metrics
