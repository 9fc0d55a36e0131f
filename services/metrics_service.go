package services

import (
	"context"

	"github.com/raphaeljcm/daily-diet-api/store"
)

type MetricsService struct {
	store store.MealStore
}

func NewMetricsService(st store.MealStore) *MetricsService {
	return &MetricsService{store: st}
}

// Metrics are the adherence aggregates for one identity. BestSequence is
// the longest contiguous run of diet-followed meals in chronological order.
type Metrics struct {
	TotalMeals           int `json:"totalMeals"`
	TotalFollowedMeals   int `json:"totalFollowedMeals"`
	TotalUnfollowedMeals int `json:"totalUnfollowedMeals"`
	BestSequence         int `json:"bestSequence"`
}

// Metrics scans the owner's meals once, ordered by meal time with creation
// order breaking ties, keeping a running streak that resets on every meal
// off the diet.
func (s *MetricsService) Metrics(ctx context.Context, ownerID string) (*Metrics, error) {
	meals, err := s.store.FindByOwnerOrdered(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := &Metrics{}
	streak := 0
	for _, meal := range meals {
		out.TotalMeals++
		if meal.FollowedDiet {
			out.TotalFollowedMeals++
			streak++
			if streak > out.BestSequence {
				out.BestSequence = streak
			}
		} else {
			out.TotalUnfollowedMeals++
			streak = 0
		}
	}
	return out, nil
}
