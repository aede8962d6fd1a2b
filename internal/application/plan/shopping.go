package plan

import (
	"context"
	"sort"

	"github.com/google/uuid"

	domainplan "github.com/nutriplan/v2/internal/domain/plan"
	"github.com/nutriplan/v2/internal/domain/recipe"
	"github.com/nutriplan/v2/internal/ports/outbound"
	"github.com/nutriplan/v2/pkg/errors"
)

const daysPerWeek = 7

// ShoppingAggregator consolidates ingredient usage from daily menus into
// weekly shopping lists, resolving food names and units through the food
// catalog port.
type ShoppingAggregator struct {
	foods outbound.FoodCatalog
}

// NewShoppingAggregator creates a shopping aggregator.
func NewShoppingAggregator(foods outbound.FoodCatalog) *ShoppingAggregator {
	return &ShoppingAggregator{foods: foods}
}

// WeeklyLists partitions menus into 7-day windows (week = ceil(day/7), the
// last week may be short) and sums ingredient quantity × slot servings per
// food per week. Units are not converted: every quantity for a food must be
// expressed in that food's canonical unit, anything else is rejected with
// ErrMixedUnits.
func (s *ShoppingAggregator) WeeklyLists(
	ctx context.Context,
	menus []domainplan.DailyMenu,
	recipesByID map[uuid.UUID]*recipe.Recipe,
) ([]domainplan.WeeklyShoppingList, error) {
	if len(menus) == 0 {
		return nil, nil
	}

	type weekTotals map[uuid.UUID]*domainplan.ShoppingItem

	weekCount := (menus[len(menus)-1].Day + daysPerWeek - 1) / daysPerWeek
	totals := make([]weekTotals, weekCount)
	for i := range totals {
		totals[i] = make(weekTotals)
	}

	foodCache := make(map[uuid.UUID]*recipe.Food)
	resolve := func(foodID uuid.UUID) (*recipe.Food, error) {
		if food, ok := foodCache[foodID]; ok {
			return food, nil
		}
		food, err := s.foods.Resolve(ctx, foodID)
		if err != nil {
			return nil, errors.NewCatalogUnavailableError("food catalog", err)
		}
		foodCache[foodID] = food
		return food, nil
	}

	for _, menu := range menus {
		week := (menu.Day - 1) / daysPerWeek
		for _, slot := range menu.Meals.Selections() {
			source, ok := recipesByID[slot.RecipeID]
			if !ok {
				continue
			}
			for _, ing := range source.Ingredients {
				food, err := resolve(ing.FoodID)
				if err != nil {
					return nil, err
				}

				if ing.Unit != "" && ing.Unit != food.Unit {
					return nil, errors.NewMixedUnitsError(food.Name, domainplan.ErrMixedUnits)
				}

				quantity := ing.Quantity * float64(slot.Servings)
				if item, exists := totals[week][ing.FoodID]; exists {
					item.TotalQuantity += quantity
					continue
				}
				totals[week][ing.FoodID] = &domainplan.ShoppingItem{
					FoodID:        ing.FoodID,
					FoodName:      food.Name,
					TotalQuantity: quantity,
					Unit:          food.Unit,
					Category:      food.Category,
				}
			}
		}
	}

	lists := make([]domainplan.WeeklyShoppingList, weekCount)
	for i, week := range totals {
		items := make([]domainplan.ShoppingItem, 0, len(week))
		for _, item := range week {
			items = append(items, *item)
		}
		// Map iteration order is random; sort for reproducible output.
		sort.Slice(items, func(a, b int) bool { return items[a].FoodName < items[b].FoodName })
		lists[i] = domainplan.WeeklyShoppingList{Week: i + 1, Items: items}
	}

	return lists, nil
}
