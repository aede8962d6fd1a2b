package plan

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	domainplan "github.com/nutriplan/v2/internal/domain/plan"
	"github.com/nutriplan/v2/internal/domain/recipe"
	"github.com/nutriplan/v2/internal/ports/inbound"
	"github.com/nutriplan/v2/internal/ports/outbound"
	"github.com/nutriplan/v2/pkg/errors"
)

const planCacheTTL = time.Hour

// PlanService implements the plan generation use cases. One invocation is a
// pure synchronous computation over its inputs; the service holds no
// mutable state between calls and is safe for concurrent use.
type PlanService struct {
	recipes  outbound.RecipeCatalog
	foods    outbound.FoodCatalog
	plans    outbound.PlanRepository
	cache    outbound.CacheRepository
	metrics  outbound.EngineMetrics
	shopping *ShoppingAggregator
	validate *validator.Validate

	defaultDuration int
	logger          *zap.Logger
}

// NewPlanService creates a new plan service. metrics may be nil.
func NewPlanService(
	recipes outbound.RecipeCatalog,
	foods outbound.FoodCatalog,
	plans outbound.PlanRepository,
	cache outbound.CacheRepository,
	metrics outbound.EngineMetrics,
	defaultDuration int,
	logger *zap.Logger,
) inbound.PlanService {
	return &PlanService{
		recipes:         recipes,
		foods:           foods,
		plans:           plans,
		cache:           cache,
		metrics:         metrics,
		shopping:        NewShoppingAggregator(foods),
		validate:        validator.New(),
		defaultDuration: defaultDuration,
		logger:          logger.Named("plan-service"),
	}
}

// GeneratePlan runs one full generation pass: validate the profile, compute
// daily targets, narrow the catalog, assemble the horizon, aggregate the
// shopping lists, persist and return the aggregate.
func (s *PlanService) GeneratePlan(ctx context.Context, cmd inbound.GeneratePlanCommand) (*inbound.NutritionPlanDTO, error) {
	s.logger.Info("Generating nutrition plan",
		zap.String("user_id", cmd.UserID.String()),
		zap.Int("duration_days", cmd.DurationDays),
	)

	start := time.Now()
	status := "failure"
	eligibleCount, shoppingWeeks := 0, 0
	defer func() {
		if s.metrics != nil {
			s.metrics.RecordPlanGenerated(status, time.Since(start), eligibleCount, shoppingWeeks)
		}
	}()

	if err := s.validate.Struct(cmd); err != nil {
		return nil, errors.NewInvalidProfileError(err.Error())
	}

	snapshot := cmd.Profile()
	if err := snapshot.Validate(); err != nil {
		return nil, errors.NewInvalidProfileError(err.Error()).WithCause(err)
	}

	duration := cmd.DurationDays
	if duration == 0 {
		duration = s.defaultDuration
	}
	if duration < 1 {
		return nil, errors.NewBadRequestError(domainplan.ErrInvalidDuration.Error())
	}

	catalog, err := s.recipes.FetchActive(ctx)
	if err != nil {
		return nil, errors.NewCatalogUnavailableError("recipe catalog", err)
	}

	eligible := EligibleRecipes(snapshot, catalog)
	eligibleCount = len(eligible)
	if len(eligible) < MinEligibleRecipes {
		return nil, errors.NewInsufficientRecipesError(len(eligible), MinEligibleRecipes).
			WithCause(domainplan.ErrInsufficientRecipes)
	}

	goals := CalculateGoals(snapshot)

	now := time.Now()
	startDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	menus, err := BuildHorizon(NewMenuAssembler(eligible), goals, duration, startDate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build plan horizon")
	}

	recipesByID := make(map[uuid.UUID]*recipe.Recipe, len(eligible))
	for _, r := range eligible {
		recipesByID[r.ID] = r
	}

	shoppingLists, err := s.shopping.WeeklyLists(ctx, menus, recipesByID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate shopping lists")
	}
	shoppingWeeks = len(shoppingLists)

	aggregate, err := domainplan.NewNutritionPlan(cmd.UserID, goals, menus, shoppingLists, startDate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to assemble nutrition plan")
	}

	if err := s.plans.Save(ctx, aggregate); err != nil {
		return nil, errors.NewDatabaseError("save nutrition plan", err)
	}

	for _, event := range aggregate.Events() {
		s.logger.Info("Domain event",
			zap.String("event", event.EventName()),
			zap.Time("occurred_at", event.OccurredAt()),
		)
	}

	dto := entityToDTO(aggregate)
	s.cachePlan(ctx, dto)
	status = "success"

	s.logger.Info("Nutrition plan generated",
		zap.String("plan_id", dto.ID.String()),
		zap.Int("daily_calories", dto.NutritionalGoals.DailyCalories),
		zap.Int("eligible_recipes", len(eligible)),
	)

	return dto, nil
}

// GetPlanByID retrieves a persisted plan, cache first.
func (s *PlanService) GetPlanByID(ctx context.Context, planID uuid.UUID) (*inbound.NutritionPlanDTO, error) {
	if cached := s.cachedPlan(ctx, planID); cached != nil {
		return cached, nil
	}

	aggregate, err := s.plans.FindByID(ctx, planID)
	if err != nil {
		if stderrors.Is(err, domainplan.ErrPlanNotFound) {
			return nil, errors.NewPlanNotFoundError(planID.String())
		}
		return nil, errors.NewDatabaseError("find nutrition plan", err)
	}

	dto := entityToDTO(aggregate)
	s.cachePlan(ctx, dto)
	return dto, nil
}

// GetPlansByUser retrieves a user's persisted plans, most recent first.
func (s *PlanService) GetPlansByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*inbound.NutritionPlanDTO, error) {
	aggregates, err := s.plans.FindByUserID(ctx, userID, limit)
	if err != nil {
		return nil, errors.NewDatabaseError("find user plans", err)
	}

	dtos := make([]*inbound.NutritionPlanDTO, len(aggregates))
	for i, aggregate := range aggregates {
		dtos[i] = entityToDTO(aggregate)
	}
	return dtos, nil
}

// entityToDTO converts the aggregate to its wire shape.
func entityToDTO(p *domainplan.NutritionPlan) *inbound.NutritionPlanDTO {
	return &inbound.NutritionPlanDTO{
		ID:                  p.ID(),
		UserID:              p.UserID(),
		NutritionalGoals:    p.Goals(),
		DailyMenus:          p.DailyMenus(),
		WeeklyShoppingLists: p.ShoppingLists(),
		Duration:            p.Duration(),
		StartDate:           p.StartDate(),
		EndDate:             p.EndDate(),
		CreatedAt:           p.CreatedAt(),
	}
}

func planCacheKey(planID uuid.UUID) string {
	return fmt.Sprintf("plan:%s", planID.String())
}

func (s *PlanService) cachedPlan(ctx context.Context, planID uuid.UUID) *inbound.NutritionPlanDTO {
	data, err := s.cache.Get(ctx, planCacheKey(planID))
	if err != nil {
		s.recordCacheOperation("get", "miss")
		return nil
	}
	var dto inbound.NutritionPlanDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		s.recordCacheOperation("get", "error")
		return nil
	}
	s.recordCacheOperation("get", "hit")
	return &dto
}

func (s *PlanService) cachePlan(ctx context.Context, dto *inbound.NutritionPlanDTO) {
	data, err := json.Marshal(dto)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, planCacheKey(dto.ID), data, planCacheTTL); err != nil {
		s.logger.Debug("Failed to cache plan", zap.Error(err))
		s.recordCacheOperation("set", "error")
		return
	}
	s.recordCacheOperation("set", "success")
}

func (s *PlanService) recordCacheOperation(operation, result string) {
	if s.metrics != nil {
		s.metrics.RecordCacheOperation(operation, result)
	}
}
