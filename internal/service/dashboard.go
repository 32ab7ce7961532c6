package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/pageza/fittrack/backend/internal/fitness"
	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/types"
	"gorm.io/gorm"
)

// DashboardService computes the daily overview from journal entries.
type DashboardService struct {
	db       *gorm.DB
	profiles IProfileService
}

var _ IDashboardService = (*DashboardService)(nil)

func NewDashboardService(db *gorm.DB, profiles IProfileService) *DashboardService {
	return &DashboardService{
		db:       db,
		profiles: profiles,
	}
}

// DailyStats totals the UTC calendar day containing day.
func (s *DashboardService) DailyStats(ctx context.Context, userID string, day time.Time) (*types.DailyStats, error) {
	start := startOfDay(day.UTC())

	entries, goal, err := s.load(ctx, userID, start, start.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	return dayStats(start, goal, entries)
}

// WeeklyStats totals the seven UTC calendar days ending with the day
// containing day. CaloriesGoal covers the whole week.
func (s *DashboardService) WeeklyStats(ctx context.Context, userID string, day time.Time) (*types.WeeklyStats, error) {
	last := startOfDay(day.UTC())
	first := last.AddDate(0, 0, -(weekDays - 1))

	entries, goal, err := s.load(ctx, userID, first, last.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	byDay := make(map[string][]models.JournalEntry, weekDays)
	for _, e := range entries {
		key := e.OccurredAt.UTC().Format(dayLayout)
		byDay[key] = append(byDay[key], e)
	}

	week := &types.WeeklyStats{
		From:         first.Format(dayLayout),
		To:           last.Format(dayLayout),
		CaloriesGoal: goal * weekDays,
		Days:         make([]types.DailyStats, 0, weekDays),
	}
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		stats, err := dayStats(d, goal, byDay[d.Format(dayLayout)])
		if err != nil {
			return nil, err
		}
		week.CaloriesConsumed += stats.CaloriesConsumed
		week.CaloriesBurned += stats.CaloriesBurned
		week.Days = append(week.Days, *stats)
	}

	agg, err := fitness.Aggregate(foodItems(entries))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate meals: %w", err)
	}
	week.Macros = agg.Macros
	week.NetCalories = week.CaloriesConsumed - week.CaloriesBurned
	week.GoalProgress = progress(week.CaloriesConsumed, week.CaloriesGoal)
	week.AverageConsumed = int(math.Round(float64(week.CaloriesConsumed) / weekDays))
	return week, nil
}

const weekDays = 7

// load returns the caller's entries in [from, to) and their daily goal.
func (s *DashboardService) load(ctx context.Context, userID string, from, to time.Time) ([]models.JournalEntry, int, error) {
	var entries []models.JournalEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND occurred_at >= ? AND occurred_at < ?", userID, from, to).
		Find(&entries).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to load entries: %w", err)
	}

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return entries, profile.CalorieGoal(), nil
}

func dayStats(day time.Time, goal int, entries []models.JournalEntry) (*types.DailyStats, error) {
	stats := &types.DailyStats{
		Date:         day.Format(dayLayout),
		CaloriesGoal: goal,
	}
	for _, e := range entries {
		if e.IsFood() {
			stats.CaloriesConsumed += e.Calories
		} else {
			stats.CaloriesBurned += e.Calories
		}
	}

	agg, err := fitness.Aggregate(foodItems(entries))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate meals: %w", err)
	}
	stats.Macros = agg.Macros
	stats.NetCalories = stats.CaloriesConsumed - stats.CaloriesBurned
	stats.GoalProgress = progress(stats.CaloriesConsumed, stats.CaloriesGoal)
	return stats, nil
}

func foodItems(entries []models.JournalEntry) []fitness.FoodItem {
	var foods []fitness.FoodItem
	for _, e := range entries {
		if !e.IsFood() {
			continue
		}
		foods = append(foods, fitness.FoodItem{
			Name:     e.Title,
			Calories: e.Calories,
			CarbsG:   e.CarbsG,
			ProteinG: e.ProteinG,
			FatG:     e.FatG,
		})
	}
	return foods
}

func progress(consumed, goal int) int {
	if goal <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(consumed) / float64(goal)))
}
