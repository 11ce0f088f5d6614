// Package health provides HTTP handlers for liveness and readiness probes.
//
// [LivenessHandler] always answers OK while the process is up.
// [ReadinessHandler] runs a set of named [Checks] in parallel and answers
// 503 when any of them fails.
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "db": db.Healthcheck(st),
//	}, health.WithLogger(log)))
//
// # Response Formats
//
// Plain text by default ("OK" or "Service Unavailable"). JSON is returned
// for Accept: application/json or ?format=json:
//
//	{
//	  "status": "unhealthy",
//	  "checks": {
//	    "db": {"status": "unhealthy", "error": "db: healthcheck failed\nconnection refused"}
//	  }
//	}
//
// # Errors
//
//   - [ErrCheckFailed] - One or more checks failed
//   - [ErrCheckTimeout] - Check exceeded timeout
package health
