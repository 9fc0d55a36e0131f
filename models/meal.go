package models

import "time"

// Meal is a single diet-diary entry. ID and UserID are assigned at creation
// and never change; MealTime is the caller-supplied timestamp used to order
// meals for the adherence metrics. CreatedAt breaks ties between meals that
// share the same MealTime and is not part of the wire format.
type Meal struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       string    `gorm:"type:uuid;not null;index:idx_meals_user_id" json:"userId"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	MealTime     time.Time `gorm:"not null" json:"mealTime"`
	FollowedDiet bool      `gorm:"not null" json:"followedDiet"`
	CreatedAt    time.Time `json:"-"`
}
