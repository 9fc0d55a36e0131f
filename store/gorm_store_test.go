package store

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/raphaeljcm/daily-diet-api/models"
)

func newTestStore(t *testing.T) MealStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Meal{}))
	return NewGormStore(db)
}

func mkMeal(owner, name string, mealTime time.Time, followed bool) *models.Meal {
	return &models.Meal{
		ID:           uuid.NewString(),
		UserID:       owner,
		Name:         name,
		MealTime:     mealTime,
		FollowedDiet: followed,
	}
}

func TestInsertAndFindOne(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	owner := uuid.NewString()

	meal := mkMeal(owner, "Breakfast", time.Date(2024, 12, 1, 8, 0, 0, 0, time.UTC), true)
	meal.Description = "oats and fruit"
	require.NoError(t, st.Insert(ctx, meal))

	got, err := st.FindOne(ctx, owner, meal.ID)
	require.NoError(t, err)
	assert.Equal(t, meal.ID, got.ID)
	assert.Equal(t, owner, got.UserID)
	assert.Equal(t, "Breakfast", got.Name)
	assert.Equal(t, "oats and fruit", got.Description)
	assert.True(t, got.FollowedDiet)
}

func TestInsertDuplicateID(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	owner := uuid.NewString()

	meal := mkMeal(owner, "Lunch", time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC), true)
	require.NoError(t, st.Insert(ctx, meal))

	dup := mkMeal(uuid.NewString(), "Other", time.Date(2024, 12, 2, 12, 0, 0, 0, time.UTC), false)
	dup.ID = meal.ID
	err := st.Insert(ctx, dup)
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestFindOneNeverCrossesOwners(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	owner := uuid.NewString()
	intruder := uuid.NewString()

	meal := mkMeal(owner, "Dinner", time.Date(2024, 12, 1, 19, 0, 0, 0, time.UTC), false)
	require.NoError(t, st.Insert(ctx, meal))

	_, err := st.FindOne(ctx, intruder, meal.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = st.FindOne(ctx, owner, uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindByOwnerIsDisjointAcrossOwners(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	alice := uuid.NewString()
	bob := uuid.NewString()

	require.NoError(t, st.Insert(ctx, mkMeal(alice, "A1", time.Date(2024, 12, 1, 8, 0, 0, 0, time.UTC), true)))
	require.NoError(t, st.Insert(ctx, mkMeal(alice, "A2", time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC), false)))
	require.NoError(t, st.Insert(ctx, mkMeal(bob, "B1", time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC), true)))

	aliceMeals, err := st.FindByOwner(ctx, alice)
	require.NoError(t, err)
	bobMeals, err := st.FindByOwner(ctx, bob)
	require.NoError(t, err)

	assert.Len(t, aliceMeals, 2)
	assert.Len(t, bobMeals, 1)
	for _, m := range aliceMeals {
		assert.Equal(t, alice, m.UserID)
	}
	assert.Equal(t, "B1", bobMeals[0].Name)
}

func TestFindByOwnerAndRange(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	owner := uuid.NewString()

	day := func(d int) time.Time { return time.Date(2024, 12, d, 12, 0, 0, 0, time.UTC) }
	require.NoError(t, st.Insert(ctx, mkMeal(owner, "early", day(1), true)))
	require.NoError(t, st.Insert(ctx, mkMeal(owner, "inside", day(5), true)))
	require.NoError(t, st.Insert(ctx, mkMeal(owner, "late", day(10), true)))

	meals, err := st.FindByOwnerAndRange(ctx, owner,
		time.Date(2024, 12, 4, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 6, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, "inside", meals[0].Name)

	// lower bound inclusive, upper bound exclusive
	meals, err = st.FindByOwnerAndRange(ctx, owner, day(5), day(10))
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, "inside", meals[0].Name)
}

func TestFindByOwnerOrderedBreaksTiesByCreation(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	owner := uuid.NewString()

	shared := time.Date(2024, 12, 1, 20, 0, 0, 0, time.UTC)
	base := time.Date(2024, 11, 30, 10, 0, 0, 0, time.UTC)

	first := mkMeal(owner, "first", shared, true)
	first.CreatedAt = base
	second := mkMeal(owner, "second", shared, true)
	second.CreatedAt = base.Add(time.Second)
	earlier := mkMeal(owner, "earlier", shared.Add(-time.Hour), false)
	earlier.CreatedAt = base.Add(2 * time.Second)

	require.NoError(t, st.Insert(ctx, second))
	require.NoError(t, st.Insert(ctx, earlier))
	require.NoError(t, st.Insert(ctx, first))

	meals, err := st.FindByOwnerOrdered(ctx, owner)
	require.NoError(t, err)
	require.Len(t, meals, 3)
	assert.Equal(t, "earlier", meals[0].Name)
	assert.Equal(t, "first", meals[1].Name)
	assert.Equal(t, "second", meals[2].Name)
}

func TestUpdateReplacesMutableFieldsOnly(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	owner := uuid.NewString()

	meal := mkMeal(owner, "Snack", time.Date(2024, 12, 1, 16, 0, 0, 0, time.UTC), true)
	require.NoError(t, st.Insert(ctx, meal))

	newTime := time.Date(2024, 12, 2, 16, 30, 0, 0, time.UTC)
	err := st.Update(ctx, owner, meal.ID, MealPatch{
		Name:         "Afternoon snack",
		Description:  "apple",
		MealTime:     newTime,
		FollowedDiet: false,
	})
	require.NoError(t, err)

	got, err := st.FindOne(ctx, owner, meal.ID)
	require.NoError(t, err)
	assert.Equal(t, meal.ID, got.ID)
	assert.Equal(t, owner, got.UserID)
	assert.Equal(t, "Afternoon snack", got.Name)
	assert.Equal(t, "apple", got.Description)
	assert.True(t, newTime.Equal(got.MealTime))
	assert.False(t, got.FollowedDiet, "followedDiet=false must be persisted, not skipped as a zero value")
}

func TestUpdateOtherOwnerIsNotFound(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	owner := uuid.NewString()
	intruder := uuid.NewString()

	meal := mkMeal(owner, "Dinner", time.Date(2024, 12, 1, 19, 0, 0, 0, time.UTC), true)
	require.NoError(t, st.Insert(ctx, meal))

	err := st.Update(ctx, intruder, meal.ID, MealPatch{Name: "hijacked", MealTime: meal.MealTime})
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := st.FindOne(ctx, owner, meal.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dinner", got.Name)
}

func TestDelete(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	owner := uuid.NewString()
	intruder := uuid.NewString()

	meal := mkMeal(owner, "Lunch", time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC), true)
	require.NoError(t, st.Insert(ctx, meal))

	assert.ErrorIs(t, st.Delete(ctx, intruder, meal.ID), ErrNotFound)
	_, err := st.FindOne(ctx, owner, meal.ID)
	require.NoError(t, err, "cross-owner delete must not remove the record")

	require.NoError(t, st.Delete(ctx, owner, meal.ID))
	_, err = st.FindOne(ctx, owner, meal.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, st.Delete(ctx, owner, meal.ID), ErrNotFound)
}
