package plan

import (
	"time"

	"github.com/google/uuid"
)

// PlanGeneratedEvent is raised when a plan generation run completes.
type PlanGeneratedEvent struct {
	PlanID      uuid.UUID
	UserID      uuid.UUID
	Duration    int
	GeneratedAt time.Time
}

func (e PlanGeneratedEvent) EventName() string {
	return "plan.generated"
}

func (e PlanGeneratedEvent) OccurredAt() time.Time {
	return e.GeneratedAt
}
