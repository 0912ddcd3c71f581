package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Dish categories as stored in the database.
const (
	CategoryMeat       = "Fleisch"
	CategoryFish       = "Fisch"
	CategoryVegetarian = "Vegetarisch"
)

// Calorie levels.
const (
	CaloriesNormal = "Normal"
	CaloriesDiet   = "Diät"
)

// Difficulty levels.
const (
	DifficultyEasy   = "Einfach"
	DifficultyMedium = "Mittel"
	DifficultyHard   = "Schwer"
)

var (
	Categories   = []string{CategoryMeat, CategoryFish, CategoryVegetarian}
	Calories     = []string{CaloriesNormal, CaloriesDiet}
	Difficulties = []string{DifficultyEasy, DifficultyMedium, DifficultyHard}
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONBStringArray", value)
	}

	return json.Unmarshal(bytes, a)
}

// Dish is a stored recipe with its picker metadata and an optional image
// held in external object storage. ImgURL references that object; the
// reference is not transactionally coupled to the object's existence.
type Dish struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	Title       string           `gorm:"size:255;not null" json:"title"`
	ImgURL      string           `gorm:"size:255" json:"imgUrl,omitempty"`
	Category    string           `gorm:"size:50;not null" json:"category"`
	Calories    string           `gorm:"size:50;not null" json:"calories"`
	Difficulty  string           `gorm:"size:50;not null" json:"difficulty"`
	Ingredients JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
}

// Validate checks the required fields and enum memberships. Writes that
// fail validation must never reach the store.
func (d *Dish) Validate() error {
	if d.Title == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	if err := validateEnum("category", d.Category, Categories, true); err != nil {
		return err
	}
	if err := validateEnum("calories", d.Calories, Calories, true); err != nil {
		return err
	}
	return validateEnum("difficulty", d.Difficulty, Difficulties, true)
}

func validateEnum(field, value string, allowed []string, required bool) error {
	if value == "" {
		if required {
			return &ValidationError{Field: field, Message: field + " is required"}
		}
		return nil
	}
	for _, v := range allowed {
		if value == v {
			return nil
		}
	}
	return &ValidationError{Field: field, Message: "`" + value + "` is not a valid " + field}
}

// DishUpdate carries the fields supplied in an edit submission. Nil fields
// were not supplied and leave the stored value untouched; a pointer to the
// empty string clears ImgURL (empty-string semantics apply only there).
type DishUpdate struct {
	Title       *string
	ImgURL      *string
	Category    *string
	Calories    *string
	Difficulty  *string
	Ingredients []string
}

// Validate checks the supplied fields only.
func (u *DishUpdate) Validate() error {
	if u.Title != nil && *u.Title == "" {
		return &ValidationError{Field: "title", Message: "title must not be empty"}
	}
	if u.Category != nil {
		if err := validateEnum("category", *u.Category, Categories, true); err != nil {
			return err
		}
	}
	if u.Calories != nil {
		if err := validateEnum("calories", *u.Calories, Calories, true); err != nil {
			return err
		}
	}
	if u.Difficulty != nil {
		return validateEnum("difficulty", *u.Difficulty, Difficulties, true)
	}
	return nil
}
