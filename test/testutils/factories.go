// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/nutriplan/v2/internal/domain/profile"
	"github.com/nutriplan/v2/internal/domain/recipe"
)

// ProfileBuilder provides a fluent interface for building test health profiles
type ProfileBuilder struct {
	userID        uuid.UUID
	age           int
	gender        profile.Gender
	weightKg      float64
	heightCm      float64
	activityLevel profile.ActivityLevel
	conditions    []profile.ConditionTag
	allergies     []profile.AllergenTag
	preferences   profile.Preferences
}

// NewProfileBuilder creates a profile builder with sane defaults
func NewProfileBuilder() *ProfileBuilder {
	return &ProfileBuilder{
		userID:        uuid.New(),
		age:           30,
		gender:        profile.GenderMale,
		weightKg:      70,
		heightCm:      175,
		activityLevel: profile.ActivityModerate,
	}
}

// WithAge sets the age
func (pb *ProfileBuilder) WithAge(age int) *ProfileBuilder {
	pb.age = age
	return pb
}

// WithGender sets the gender
func (pb *ProfileBuilder) WithGender(gender profile.Gender) *ProfileBuilder {
	pb.gender = gender
	return pb
}

// WithBody sets weight and height
func (pb *ProfileBuilder) WithBody(weightKg, heightCm float64) *ProfileBuilder {
	pb.weightKg = weightKg
	pb.heightCm = heightCm
	return pb
}

// WithActivityLevel sets the activity level
func (pb *ProfileBuilder) WithActivityLevel(level profile.ActivityLevel) *ProfileBuilder {
	pb.activityLevel = level
	return pb
}

// WithConditions sets the health conditions
func (pb *ProfileBuilder) WithConditions(conditions ...profile.ConditionTag) *ProfileBuilder {
	pb.conditions = conditions
	return pb
}

// WithAllergies sets the allergies
func (pb *ProfileBuilder) WithAllergies(allergies ...profile.AllergenTag) *ProfileBuilder {
	pb.allergies = allergies
	return pb
}

// WithGoals sets the selected goals
func (pb *ProfileBuilder) WithGoals(goals ...profile.GoalTag) *ProfileBuilder {
	pb.preferences.SelectedGoals = goals
	return pb
}

// WithVegetarian marks the profile vegetarian
func (pb *ProfileBuilder) WithVegetarian() *ProfileBuilder {
	pb.preferences.Vegetarian = true
	return pb
}

// WithVegan marks the profile vegan
func (pb *ProfileBuilder) WithVegan() *ProfileBuilder {
	pb.preferences.Vegan = true
	return pb
}

// Build creates the health profile
func (pb *ProfileBuilder) Build() *profile.UserHealthProfile {
	return &profile.UserHealthProfile{
		UserID:        pb.userID,
		Age:           pb.age,
		Gender:        pb.gender,
		WeightKg:      pb.weightKg,
		HeightCm:      pb.heightCm,
		ActivityLevel: pb.activityLevel,
		Conditions:    pb.conditions,
		Allergies:     pb.allergies,
		Preferences:   pb.preferences,
	}
}

// RecipeBuilder provides a fluent interface for building test recipes
type RecipeBuilder struct {
	id           uuid.UUID
	name         string
	category     recipe.CategoryType
	ingredients  []recipe.Ingredient
	nutrition    recipe.Nutrition
	servings     int
	restrictions map[profile.ConditionTag]bool
	allergens    []profile.AllergenTag
	diets        recipe.DietFlags
	active       bool
}

// NewRecipeBuilder creates a recipe builder with default values
func NewRecipeBuilder() *RecipeBuilder {
	faker := gofakeit.New(0)

	return &RecipeBuilder{
		id:       uuid.New(),
		name:     faker.Dinner(),
		category: recipe.CategoryLunch,
		nutrition: recipe.Nutrition{
			Calories: 500,
			ProteinG: 30,
			CarbsG:   50,
			FatG:     15,
			FiberG:   5,
			SodiumMg: 300,
		},
		servings:     1,
		restrictions: map[profile.ConditionTag]bool{},
		active:       true,
	}
}

// WithName sets the recipe name
func (rb *RecipeBuilder) WithName(name string) *RecipeBuilder {
	rb.name = name
	return rb
}

// WithCategory sets the recipe category
func (rb *RecipeBuilder) WithCategory(category recipe.CategoryType) *RecipeBuilder {
	rb.category = category
	return rb
}

// WithIngredients sets the recipe ingredients
func (rb *RecipeBuilder) WithIngredients(ingredients ...recipe.Ingredient) *RecipeBuilder {
	rb.ingredients = ingredients
	return rb
}

// WithNutrition sets the whole-batch nutrition
func (rb *RecipeBuilder) WithNutrition(n recipe.Nutrition) *RecipeBuilder {
	rb.nutrition = n
	return rb
}

// WithCalories sets the whole-batch calories
func (rb *RecipeBuilder) WithCalories(calories float64) *RecipeBuilder {
	rb.nutrition.Calories = calories
	return rb
}

// WithServings sets the base servings count
func (rb *RecipeBuilder) WithServings(servings int) *RecipeBuilder {
	rb.servings = servings
	return rb
}

// WithRestriction flags the recipe unsafe for a condition
func (rb *RecipeBuilder) WithRestriction(condition profile.ConditionTag) *RecipeBuilder {
	rb.restrictions[condition] = true
	return rb
}

// WithAllergens sets the allergens
func (rb *RecipeBuilder) WithAllergens(allergens ...profile.AllergenTag) *RecipeBuilder {
	rb.allergens = allergens
	return rb
}

// WithDiets sets the diet flags
func (rb *RecipeBuilder) WithDiets(diets recipe.DietFlags) *RecipeBuilder {
	rb.diets = diets
	return rb
}

// Inactive marks the recipe inactive
func (rb *RecipeBuilder) Inactive() *RecipeBuilder {
	rb.active = false
	return rb
}

// Build creates the recipe
func (rb *RecipeBuilder) Build() *recipe.Recipe {
	return &recipe.Recipe{
		ID:             rb.id,
		Name:           rb.name,
		Category:       rb.category,
		Ingredients:    rb.ingredients,
		TotalNutrition: rb.nutrition,
		Servings:       rb.servings,
		Restrictions:   rb.restrictions,
		Allergens:      rb.allergens,
		Diets:          rb.diets,
		IsActive:       rb.active,
	}
}

// FoodFactory creates test foods with faked names
type FoodFactory struct {
	faker *gofakeit.Faker
}

// NewFoodFactory creates a food factory with a seeded faker
func NewFoodFactory(seed int64) *FoodFactory {
	return &FoodFactory{faker: gofakeit.New(seed)}
}

// Food creates a food with the given unit
func (f *FoodFactory) Food(unit string) *recipe.Food {
	return &recipe.Food{
		ID:       uuid.New(),
		Name:     f.faker.Fruit(),
		Unit:     unit,
		Category: "produce",
	}
}

// CatalogRecipes builds one eligible recipe per meal slot category, enough to
// clear the minimum pool size.
func CatalogRecipes() []*recipe.Recipe {
	return []*recipe.Recipe{
		NewRecipeBuilder().WithName("Oatmeal").WithCategory(recipe.CategoryBreakfast).WithCalories(400).Build(),
		NewRecipeBuilder().WithName("Chicken bowl").WithCategory(recipe.CategoryLunch).WithCalories(600).Build(),
		NewRecipeBuilder().WithName("Baked salmon").WithCategory(recipe.CategoryDinner).WithCalories(550).Build(),
		NewRecipeBuilder().WithName("Yogurt cup").WithCategory(recipe.CategorySnack).WithCalories(200).Build(),
	}
}
