/*
Package observability provides lifecycle hooks for monitoring conversations.

Metrics exposes Prometheus counters for sessions, node visits and option
selections. LogHooks writes every lifecycle event to a structured logger.
MergeHooks combines several hook sets so both can be installed at once:

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
	hooks := observability.MergeHooks(metrics.Hooks(), observability.LogHooks(logger))
	p := parley.New(parley.WithLifecycleHooks(hooks))
*/
package observability
