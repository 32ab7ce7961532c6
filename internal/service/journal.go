package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/fittrack/backend/internal/fitness"
	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/types"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a record does not exist for the caller.
var ErrNotFound = errors.New("not found")

// Journal periods.
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodAll   = "all"
)

const dayLayout = "2006-01-02"

// JournalService manages food and workout journal entries.
type JournalService struct {
	db       *gorm.DB
	profiles IProfileService
	now      func() time.Time
}

var _ IJournalService = (*JournalService)(nil)

// NewJournalService creates a new JournalService instance. profiles supplies
// the weight used to estimate workouts logged without calories.
func NewJournalService(db *gorm.DB, profiles IProfileService) *JournalService {
	return &JournalService{
		db:       db,
		profiles: profiles,
		now:      time.Now,
	}
}

// CreateEntry validates and stores a journal entry.
func (s *JournalService) CreateEntry(ctx context.Context, userID string, req *types.CreateJournalEntryRequest) (*models.JournalEntry, error) {
	entryType := strings.ToLower(strings.TrimSpace(req.Type))
	if !models.ValidEntryTypes[entryType] {
		return nil, &fitness.InputError{Field: "type", Msg: fmt.Sprintf("must be food, workout or yoga, got %q", req.Type)}
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, &fitness.InputError{Field: "title", Msg: "is required"}
	}
	for field, v := range map[string]*int{"carbs_g": req.CarbsG, "protein_g": req.ProteinG, "fat_g": req.FatG} {
		if v != nil && *v < 0 {
			return nil, &fitness.InputError{Field: field, Msg: fmt.Sprintf("must not be negative, got %d", *v)}
		}
	}

	entry := &models.JournalEntry{
		UserID:          userID,
		Type:            entryType,
		Title:           title,
		Description:     req.Description,
		CarbsG:          req.CarbsG,
		ProteinG:        req.ProteinG,
		FatG:            req.FatG,
		ActivityID:      req.ActivityID,
		DurationMinutes: req.DurationMinutes,
		OccurredAt:      s.now().UTC(),
	}
	if req.OccurredAt != nil {
		entry.OccurredAt = req.OccurredAt.UTC()
	}

	switch {
	case req.Calories != nil:
		if *req.Calories < 0 {
			return nil, &fitness.InputError{Field: "calories", Msg: fmt.Sprintf("must not be negative, got %d", *req.Calories)}
		}
		entry.Calories = *req.Calories
	case entryType == models.EntryTypeFood:
		return nil, &fitness.InputError{Field: "calories", Msg: "is required for food entries"}
	default:
		kcal, err := s.estimateWorkout(ctx, userID, req.ActivityID, req.DurationMinutes)
		if err != nil {
			return nil, err
		}
		entry.Calories = kcal
	}

	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, fmt.Errorf("failed to create journal entry: %w", err)
	}
	return entry, nil
}

func (s *JournalService) estimateWorkout(ctx context.Context, userID, activityID string, minutes float64) (int, error) {
	if activityID == "" {
		return 0, &fitness.InputError{Field: "calories", Msg: "or activity_id with duration_minutes is required"}
	}
	activity, err := fitness.LookupActivity(activityID)
	if err != nil {
		return 0, &fitness.InputError{Field: "activity_id", Msg: fmt.Sprintf("unknown activity %q", activityID)}
	}

	weight := DefaultWeightKg
	if s.profiles != nil {
		profile, err := s.profiles.GetProfile(ctx, userID)
		if err != nil {
			return 0, fmt.Errorf("failed to load profile: %w", err)
		}
		if profile.WeightKg > 0 {
			weight = profile.WeightKg
		}
	}
	return fitness.EstimateBurn(activity.MET, weight, minutes)
}

// ListEntries returns the period's entries grouped by UTC day, newest first.
func (s *JournalService) ListEntries(ctx context.Context, userID, period string) ([]types.JournalDay, error) {
	entries, _, err := s.entries(ctx, userID, period)
	if err != nil {
		return nil, err
	}

	days := []types.JournalDay{}
	for _, e := range entries {
		date := e.OccurredAt.UTC().Format(dayLayout)
		if n := len(days); n == 0 || days[n-1].Date != date {
			days = append(days, types.JournalDay{Date: date})
		}
		day := &days[len(days)-1]
		day.Entries = append(day.Entries, e)
		day.NetKcal += e.SignedCalories()
	}
	return days, nil
}

// DeleteEntry removes one of the user's entries.
func (s *JournalService) DeleteEntry(ctx context.Context, userID string, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.JournalEntry{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete journal entry: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Summary totals consumed and burned calories over the period.
func (s *JournalService) Summary(ctx context.Context, userID, period string) (*types.JournalSummary, error) {
	entries, from, err := s.entries(ctx, userID, period)
	if err != nil {
		return nil, err
	}

	summary := &types.JournalSummary{
		Period:  period,
		From:    from,
		Entries: len(entries),
	}
	for _, e := range entries {
		if e.IsFood() {
			summary.ConsumedKcal += e.Calories
		} else {
			summary.BurnedKcal += e.Calories
		}
	}
	return summary, nil
}

func (s *JournalService) entries(ctx context.Context, userID, period string) ([]models.JournalEntry, time.Time, error) {
	from, err := periodStart(s.now().UTC(), period)
	if err != nil {
		return nil, time.Time{}, err
	}

	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if !from.IsZero() {
		q = q.Where("occurred_at >= ?", from)
	}

	var entries []models.JournalEntry
	if err := q.Order("occurred_at DESC").Find(&entries).Error; err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return entries, from, nil
}

// periodStart returns the first instant of period: the start of the day six
// days ago for a week, 29 days ago for a month, zero for all.
func periodStart(now time.Time, period string) (time.Time, error) {
	today := startOfDay(now)
	switch period {
	case PeriodWeek, "":
		return today.AddDate(0, 0, -6), nil
	case PeriodMonth:
		return today.AddDate(0, 0, -29), nil
	case PeriodAll:
		return time.Time{}, nil
	}
	return time.Time{}, &fitness.InputError{Field: "period", Msg: fmt.Sprintf("must be week, month or all, got %q", period)}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
