package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/raphaeljcm/daily-diet-api/models"
)

type gormStore struct {
	db *gorm.DB
}

// NewGormStore wraps a GORM connection as a MealStore. The connection must
// be opened with TranslateError so duplicate keys surface as
// gorm.ErrDuplicatedKey.
func NewGormStore(db *gorm.DB) MealStore {
	return &gormStore{db: db}
}

func (s *gormStore) Insert(ctx context.Context, meal *models.Meal) error {
	if err := s.db.WithContext(ctx).Create(meal).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateID
		}
		return err
	}
	return nil
}

func (s *gormStore) FindByOwner(ctx context.Context, ownerID string) ([]models.Meal, error) {
	meals := make([]models.Meal, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at ASC").
		Find(&meals).Error
	return meals, err
}

func (s *gormStore) FindByOwnerAndRange(ctx context.Context, ownerID string, from, to time.Time) ([]models.Meal, error) {
	meals := make([]models.Meal, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND meal_time >= ? AND meal_time < ?", ownerID, from, to).
		Order("created_at ASC").
		Find(&meals).Error
	return meals, err
}

// FindByOwnerOrdered returns the owner's meals sorted for the streak scan:
// meal_time ascending, with creation order breaking ties.
func (s *gormStore) FindByOwnerOrdered(ctx context.Context, ownerID string) ([]models.Meal, error) {
	meals := make([]models.Meal, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("meal_time ASC, created_at ASC, id ASC").
		Find(&meals).Error
	return meals, err
}

func (s *gormStore) FindOne(ctx context.Context, ownerID, id string) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &meal, nil
}

func (s *gormStore) Update(ctx context.Context, ownerID, id string, patch MealPatch) error {
	res := s.db.WithContext(ctx).
		Model(&models.Meal{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Select("name", "description", "meal_time", "followed_diet").
		Updates(models.Meal{
			Name:         patch.Name,
			Description:  patch.Description,
			MealTime:     patch.MealTime,
			FollowedDiet: patch.FollowedDiet,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) Delete(ctx context.Context, ownerID, id string) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&models.Meal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
