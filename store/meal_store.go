package store

import (
	"context"
	"errors"
	"time"

	"github.com/raphaeljcm/daily-diet-api/models"
)

var (
	// ErrNotFound is returned when no meal matches both the id and the
	// owner. A meal that exists under a different owner is reported the
	// same way as one that does not exist at all.
	ErrNotFound = errors.New("meal not found")

	// ErrDuplicateID is returned by Insert on a primary-key clash.
	ErrDuplicateID = errors.New("meal id already exists")
)

// MealPatch carries the mutable fields of a meal for Update. ID and owner
// are never part of a patch.
type MealPatch struct {
	Name         string
	Description  string
	MealTime     time.Time
	FollowedDiet bool
}

// MealStore is the persistence boundary for meals. Every method takes the
// owner identity as a mandatory scope; no implementation may return or
// mutate a record across owner boundaries, even when the id alone matches.
type MealStore interface {
	Insert(ctx context.Context, meal *models.Meal) error
	FindByOwner(ctx context.Context, ownerID string) ([]models.Meal, error)
	FindByOwnerAndRange(ctx context.Context, ownerID string, from, to time.Time) ([]models.Meal, error)
	FindByOwnerOrdered(ctx context.Context, ownerID string) ([]models.Meal, error)
	FindOne(ctx context.Context, ownerID, id string) (*models.Meal, error)
	Update(ctx context.Context, ownerID, id string, patch MealPatch) error
	Delete(ctx context.Context, ownerID, id string) error
}
