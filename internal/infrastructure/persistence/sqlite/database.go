// Package sqlite provides SQLite database setup and configuration
package sqlite

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	gormModels "github.com/nutriplan/v2/internal/infrastructure/persistence/gorm"
)

// SetupDatabase creates and configures the SQLite database
func SetupDatabase(dbPath string, logLevel logger.LogLevel) (*gorm.DB, error) {
	// Use in-memory database if no path provided
	if dbPath == "" {
		dbPath = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Run auto-migration
	err = db.AutoMigrate(
		&gormModels.FoodModel{},
		&gormModels.RecipeModel{},
		&gormModels.NutritionPlanModel{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

type seedIngredient struct {
	FoodID   uuid.UUID `json:"foodId"`
	Quantity float64   `json:"quantity"`
	Unit     string    `json:"unit"`
}

type seedNutrition struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"proteinG"`
	CarbsG   float64 `json:"carbsG"`
	FatG     float64 `json:"fatG"`
	FiberG   float64 `json:"fiberG"`
	SodiumMg float64 `json:"sodiumMg"`
}

func mustJSON(v interface{}) gormModels.JSONDocument {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return gormModels.JSONDocument(data)
}

// SeedDatabase populates the database with a small demo catalog
func SeedDatabase(db *gorm.DB) error {
	// Check if data already exists
	var foodCount int64
	db.Model(&gormModels.FoodModel{}).Count(&foodCount)
	if foodCount > 0 {
		return nil // Already seeded
	}

	foods := []gormModels.FoodModel{
		{ID: uuid.New(), Name: "Rolled oats", Unit: "g", Category: "grains"},
		{ID: uuid.New(), Name: "Whole milk", Unit: "ml", Category: "dairy"},
		{ID: uuid.New(), Name: "Chicken breast", Unit: "g", Category: "meat"},
		{ID: uuid.New(), Name: "Brown rice", Unit: "g", Category: "grains"},
		{ID: uuid.New(), Name: "Salmon fillet", Unit: "g", Category: "fish"},
		{ID: uuid.New(), Name: "Broccoli", Unit: "g", Category: "vegetables"},
		{ID: uuid.New(), Name: "Almonds", Unit: "g", Category: "nuts"},
		{ID: uuid.New(), Name: "Apple", Unit: "unit", Category: "fruit"},
		{ID: uuid.New(), Name: "Greek yogurt", Unit: "g", Category: "dairy"},
		{ID: uuid.New(), Name: "Dark chocolate", Unit: "g", Category: "sweets"},
		{ID: uuid.New(), Name: "Eggs", Unit: "unit", Category: "dairy"},
		{ID: uuid.New(), Name: "Lentils", Unit: "g", Category: "legumes"},
	}
	for i := range foods {
		if err := db.Create(&foods[i]).Error; err != nil {
			return fmt.Errorf("failed to create demo food: %w", err)
		}
	}

	byName := make(map[string]uuid.UUID, len(foods))
	for _, f := range foods {
		byName[f.Name] = f.ID
	}

	recipes := []gormModels.RecipeModel{
		{
			ID:       uuid.New(),
			Name:     "Oatmeal with milk",
			Category: "breakfast",
			Ingredients: mustJSON([]seedIngredient{
				{FoodID: byName["Rolled oats"], Quantity: 80, Unit: "g"},
				{FoodID: byName["Whole milk"], Quantity: 250, Unit: "ml"},
			}),
			Nutrition: mustJSON(seedNutrition{
				Calories: 450, ProteinG: 18, CarbsG: 65, FatG: 12, FiberG: 8, SodiumMg: 120,
			}),
			Restrictions: gormModels.StringSlice{},
			Allergens:    gormModels.StringSlice{"lactose"},
			Vegetarian:   true,
			Servings:     1,
			IsActive:     true,
		},
		{
			ID:       uuid.New(),
			Name:     "Scrambled eggs with greens",
			Category: "breakfast",
			Ingredients: mustJSON([]seedIngredient{
				{FoodID: byName["Eggs"], Quantity: 3, Unit: "unit"},
				{FoodID: byName["Broccoli"], Quantity: 100, Unit: "g"},
			}),
			Nutrition: mustJSON(seedNutrition{
				Calories: 320, ProteinG: 22, CarbsG: 8, FatG: 22, FiberG: 3, SodiumMg: 280,
			}),
			Restrictions: gormModels.StringSlice{},
			Allergens:    gormModels.StringSlice{"egg"},
			Vegetarian:   true,
			Servings:     1,
			IsActive:     true,
		},
		{
			ID:       uuid.New(),
			Name:     "Grilled chicken with rice",
			Category: "lunch",
			Ingredients: mustJSON([]seedIngredient{
				{FoodID: byName["Chicken breast"], Quantity: 180, Unit: "g"},
				{FoodID: byName["Brown rice"], Quantity: 120, Unit: "g"},
				{FoodID: byName["Broccoli"], Quantity: 150, Unit: "g"},
			}),
			Nutrition: mustJSON(seedNutrition{
				Calories: 620, ProteinG: 52, CarbsG: 60, FatG: 14, FiberG: 7, SodiumMg: 340,
			}),
			Restrictions: gormModels.StringSlice{},
			Allergens:    gormModels.StringSlice{},
			Servings:     1,
			IsActive:     true,
		},
		{
			ID:       uuid.New(),
			Name:     "Lentil stew",
			Category: "almuerzo",
			Ingredients: mustJSON([]seedIngredient{
				{FoodID: byName["Lentils"], Quantity: 150, Unit: "g"},
				{FoodID: byName["Broccoli"], Quantity: 100, Unit: "g"},
			}),
			Nutrition: mustJSON(seedNutrition{
				Calories: 540, ProteinG: 30, CarbsG: 80, FatG: 6, FiberG: 18, SodiumMg: 420,
			}),
			Restrictions: gormModels.StringSlice{},
			Allergens:    gormModels.StringSlice{},
			Vegetarian:   true,
			Vegan:        true,
			Servings:     2,
			IsActive:     true,
		},
		{
			ID:       uuid.New(),
			Name:     "Baked salmon with broccoli",
			Category: "dinner",
			Ingredients: mustJSON([]seedIngredient{
				{FoodID: byName["Salmon fillet"], Quantity: 160, Unit: "g"},
				{FoodID: byName["Broccoli"], Quantity: 200, Unit: "g"},
			}),
			Nutrition: mustJSON(seedNutrition{
				Calories: 480, ProteinG: 40, CarbsG: 12, FatG: 28, FiberG: 5, SodiumMg: 380,
			}),
			Restrictions: gormModels.StringSlice{},
			Allergens:    gormModels.StringSlice{"fish"},
			Servings:     1,
			IsActive:     true,
		},
		{
			ID:       uuid.New(),
			Name:     "Yogurt with almonds",
			Category: "snack",
			Ingredients: mustJSON([]seedIngredient{
				{FoodID: byName["Greek yogurt"], Quantity: 170, Unit: "g"},
				{FoodID: byName["Almonds"], Quantity: 30, Unit: "g"},
			}),
			Nutrition: mustJSON(seedNutrition{
				Calories: 280, ProteinG: 20, CarbsG: 14, FatG: 16, FiberG: 4, SodiumMg: 75,
			}),
			Restrictions: gormModels.StringSlice{},
			Allergens:    gormModels.StringSlice{"lactose", "nuts"},
			Vegetarian:   true,
			Servings:     1,
			IsActive:     true,
		},
		{
			ID:       uuid.New(),
			Name:     "Apple with almond butter",
			Category: "merienda",
			Ingredients: mustJSON([]seedIngredient{
				{FoodID: byName["Apple"], Quantity: 1, Unit: "unit"},
				{FoodID: byName["Almonds"], Quantity: 20, Unit: "g"},
			}),
			Nutrition: mustJSON(seedNutrition{
				Calories: 210, ProteinG: 5, CarbsG: 28, FatG: 10, FiberG: 6, SodiumMg: 2,
			}),
			Restrictions: gormModels.StringSlice{},
			Allergens:    gormModels.StringSlice{"nuts"},
			Vegetarian:   true,
			Vegan:        true,
			Servings:     1,
			IsActive:     true,
		},
		{
			ID:       uuid.New(),
			Name:     "Dark chocolate squares",
			Category: "dessert",
			Ingredients: mustJSON([]seedIngredient{
				{FoodID: byName["Dark chocolate"], Quantity: 30, Unit: "g"},
			}),
			Nutrition: mustJSON(seedNutrition{
				Calories: 170, ProteinG: 2, CarbsG: 14, FatG: 12, FiberG: 3, SodiumMg: 6,
			}),
			Restrictions: gormModels.StringSlice{"diabetes"},
			Allergens:    gormModels.StringSlice{},
			Vegetarian:   true,
			Servings:     1,
			IsActive:     true,
		},
	}
	for i := range recipes {
		if err := db.Create(&recipes[i]).Error; err != nil {
			return fmt.Errorf("failed to create demo recipe: %w", err)
		}
	}

	return nil
}
