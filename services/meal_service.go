package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/raphaeljcm/daily-diet-api/models"
	"github.com/raphaeljcm/daily-diet-api/store"
)

// ErrValidation is returned when a meal payload is missing required fields.
var ErrValidation = errors.New("invalid meal payload")

type MealService struct {
	store store.MealStore
}

func NewMealService(st store.MealStore) *MealService {
	return &MealService{store: st}
}

// MealInput carries the caller-editable fields of a meal. The owner never
// comes from the payload; it is always the resolved identity.
type MealInput struct {
	Name         string
	Description  string
	MealTime     time.Time
	FollowedDiet bool
}

func (in MealInput) validate() error {
	if strings.TrimSpace(in.Name) == "" || in.MealTime.IsZero() {
		return ErrValidation
	}
	return nil
}

func (s *MealService) Create(ctx context.Context, ownerID string, in MealInput) (*models.Meal, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	meal := &models.Meal{
		ID:           uuid.NewString(),
		UserID:       ownerID,
		Name:         in.Name,
		Description:  in.Description,
		MealTime:     in.MealTime,
		FollowedDiet: in.FollowedDiet,
	}
	if err := s.store.Insert(ctx, meal); err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) List(ctx context.Context, ownerID string) ([]models.Meal, error) {
	return s.store.FindByOwner(ctx, ownerID)
}

// ListByRange returns the owner's meals with from <= mealTime < to.
func (s *MealService) ListByRange(ctx context.Context, ownerID string, from, to time.Time) ([]models.Meal, error) {
	return s.store.FindByOwnerAndRange(ctx, ownerID, from, to)
}

func (s *MealService) Get(ctx context.Context, ownerID, id string) (*models.Meal, error) {
	return s.store.FindOne(ctx, ownerID, id)
}

// Update replaces name, description, mealTime and followedDiet on the
// owner's meal. ID and owner are untouchable.
func (s *MealService) Update(ctx context.Context, ownerID, id string, in MealInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	return s.store.Update(ctx, ownerID, id, store.MealPatch{
		Name:         in.Name,
		Description:  in.Description,
		MealTime:     in.MealTime,
		FollowedDiet: in.FollowedDiet,
	})
}

// Delete removes the owner's meal. Deleting an id that does not exist, or
// that belongs to another owner, reports store.ErrNotFound; the two cases
// are deliberately indistinguishable.
func (s *MealService) Delete(ctx context.Context, ownerID, id string) error {
	return s.store.Delete(ctx, ownerID, id)
}
