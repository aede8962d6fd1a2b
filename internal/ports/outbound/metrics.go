package outbound

import "time"

// EngineMetrics receives generation telemetry from the application layer.
// Implementations must be safe for concurrent use. A nil EngineMetrics
// disables recording.
type EngineMetrics interface {
	// RecordPlanGenerated records the outcome of one generation run.
	RecordPlanGenerated(status string, duration time.Duration, eligibleRecipes, shoppingWeeks int)

	// RecordCacheOperation records a cache operation outcome
	// (operation: get/set, status: hit/miss/error/success).
	RecordCacheOperation(operation, status string)
}
