// Package gorm provides GORM model definitions for the application
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FoodModel represents the GORM model for foods
type FoodModel struct {
	ID       uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name     string    `gorm:"type:varchar(255);not null;index"`
	Unit     string    `gorm:"type:varchar(20);not null"`
	Category string    `gorm:"type:varchar(50);index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RecipeModel represents the GORM model for recipes
type RecipeModel struct {
	ID   uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name string    `gorm:"type:varchar(255);not null;index"`

	// Categorization
	Category string `gorm:"type:varchar(50);index"`

	// Recipe details, stored as JSON documents
	Ingredients  JSONDocument `gorm:"type:json"`
	Nutrition    JSONDocument `gorm:"type:json"`
	Restrictions StringSlice  `gorm:"type:json"`
	Allergens    StringSlice  `gorm:"type:json"`

	// Diet flags
	Vegetarian bool `gorm:"default:false"`
	Vegan      bool `gorm:"default:false"`

	Servings int  `gorm:"default:1"`
	IsActive bool `gorm:"default:true;index"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// NutritionPlanModel represents the GORM model for generated nutrition plans
type NutritionPlanModel struct {
	ID     uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID uuid.UUID `gorm:"type:char(36);not null;index"`

	// Plan content, stored as JSON documents in the external wire shape
	Goals         JSONDocument `gorm:"type:json"`
	DailyMenus    JSONDocument `gorm:"type:json"`
	ShoppingLists JSONDocument `gorm:"type:json"`

	Duration  int       `gorm:"not null"`
	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// StringSlice custom type for handling string slices in JSON
type StringSlice []string

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}
}

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// JSONDocument custom type for handling arbitrary JSON columns
type JSONDocument json.RawMessage

// Scan implements the sql.Scanner interface
func (j *JSONDocument) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		*j = append((*j)[:0], v...)
		return nil
	case string:
		*j = JSONDocument(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into JSONDocument", value)
	}
}

// Value implements the driver.Valuer interface
func (j JSONDocument) Value() (driver.Value, error) {
	if len(j) == 0 {
		return "null", nil
	}
	return string(j), nil
}

// BeforeCreate hook for FoodModel
func (f *FoodModel) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for RecipeModel
func (r *RecipeModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for NutritionPlanModel
func (p *NutritionPlanModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName methods for custom table names
func (FoodModel) TableName() string {
	return "foods"
}

func (RecipeModel) TableName() string {
	return "recipes"
}

func (NutritionPlanModel) TableName() string {
	return "nutrition_plans"
}
