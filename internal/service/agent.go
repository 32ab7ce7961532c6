package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode"

	"github.com/pageza/fittrack/backend/internal/fitness"
	"github.com/pageza/fittrack/backend/internal/types"
)

const maxAgentMessage = 2000

var quickQuestions = []string{
	"Analyze my calorie intake vs burn",
	"Suggest healthy meal options",
	"Create a workout plan for me",
	"Am I meeting my fitness goals?",
}

// AgentService is the health agent chat. Replies are chosen by keyword and
// filled in from the user's profile and today's journal.
type AgentService struct {
	profiles  IProfileService
	dashboard IDashboardService
	history   ChatHistory
	delay     time.Duration
	now       func() time.Time
}

var _ IAgentService = (*AgentService)(nil)

// NewAgentService creates a new AgentService instance. A nil history keeps
// conversations in process memory.
func NewAgentService(profiles IProfileService, dashboard IDashboardService, history ChatHistory, delay time.Duration) *AgentService {
	if history == nil {
		history = NewMemoryChatHistory()
	}
	return &AgentService{
		profiles:  profiles,
		dashboard: dashboard,
		history:   history,
		delay:     delay,
		now:       time.Now,
	}
}

// QuickQuestions returns the suggested prompts.
func (s *AgentService) QuickQuestions() []string {
	return append([]string(nil), quickQuestions...)
}

// History returns the user's recent conversation, oldest first.
func (s *AgentService) History(ctx context.Context, userID string) ([]types.ChatMessage, error) {
	msgs, err := s.history.Recent(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}
	return msgs, nil
}

// Ask answers one message after the configured thinking delay.
func (s *AgentService) Ask(ctx context.Context, userID, message string) (*types.ChatMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, &fitness.InputError{Field: "message", Msg: "is required"}
	}
	if len(message) > maxAgentMessage {
		return nil, &fitness.InputError{Field: "message", Msg: fmt.Sprintf("must be at most %d characters", maxAgentMessage)}
	}

	question := types.ChatMessage{Role: types.RoleUser, Content: message, Timestamp: s.now().UTC()}

	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}

	content, err := s.reply(ctx, userID, words(message))
	if err != nil {
		return nil, err
	}
	answer := types.ChatMessage{Role: types.RoleAgent, Content: content, Timestamp: s.now().UTC()}

	if err := s.history.Append(ctx, userID, question, answer); err != nil {
		log.Printf("[AgentService] Failed to save chat history for %s: %v", userID, err)
	}
	return &answer, nil
}

func (s *AgentService) reply(ctx context.Context, userID string, msg []string) (string, error) {
	switch {
	case containsAny(msg, "goal", "progress"):
		stats, err := s.dashboard.DailyStats(ctx, userID, s.now())
		if err != nil {
			return "", err
		}
		return goalReply(stats), nil
	case containsAny(msg, "calorie", "intake", "burn"):
		stats, err := s.dashboard.DailyStats(ctx, userID, s.now())
		if err != nil {
			return "", err
		}
		return calorieReply(stats), nil
	case containsAny(msg, "meal", "food", "eat", "diet"):
		return mealReply, nil
	case containsAny(msg, "workout", "exercise", "plan", "train"):
		profile, err := s.profiles.GetProfile(ctx, userID)
		if err != nil {
			return "", err
		}
		return workoutReply(profile.WeightKg), nil
	case containsAny(msg, "bmi", "weight"):
		profile, err := s.profiles.GetProfile(ctx, userID)
		if err != nil {
			return "", err
		}
		bmi, err := fitness.BMI(profile.HeightCm, profile.WeightKg)
		if err != nil {
			return "Add your height and weight to your health profile and I can work out your BMI.", nil
		}
		return fmt.Sprintf("Your BMI is %.1f (%s) at %.0f cm and %.0f kg.", bmi, fitness.BMICategory(bmi), profile.HeightCm, profile.WeightKg), nil
	}
	return fallbackReply, nil
}

const (
	mealReply = "Build each plate around lean protein (chicken, fish, tofu or eggs), half a plate of vegetables " +
		"and a fist of whole grains. Snack on fruit, yoghurt or a handful of nuts, and keep sugary drinks for special occasions."
	fallbackReply = "I can analyse your calorie intake and burn, suggest meals, build a workout plan or check your goals. " +
		"Try one of the quick questions to get started."
)

func calorieReply(stats *types.DailyStats) string {
	var advice string
	switch {
	case stats.CaloriesConsumed == 0 && stats.CaloriesBurned == 0:
		return "There is nothing in your journal for today yet. Log a meal or a workout and ask me again."
	case stats.NetCalories > stats.CaloriesGoal:
		advice = "You are above your goal, so a walk or a lighter dinner would bring you back in range."
	case stats.NetCalories < stats.CaloriesGoal/2:
		advice = "You are well under your goal. Make sure you eat enough to recover from training."
	default:
		advice = "That is a healthy balance for today."
	}
	return fmt.Sprintf("Today you have eaten %d kcal and burned %d kcal, a net of %d kcal against a goal of %d kcal. %s",
		stats.CaloriesConsumed, stats.CaloriesBurned, stats.NetCalories, stats.CaloriesGoal, advice)
}

func goalReply(stats *types.DailyStats) string {
	remaining := stats.CaloriesGoal - stats.NetCalories
	if remaining < 0 {
		return fmt.Sprintf("You are %d kcal over today's %d kcal goal (%d%% consumed).", -remaining, stats.CaloriesGoal, stats.GoalProgress)
	}
	return fmt.Sprintf("You have %d kcal left of today's %d kcal goal (%d%% consumed).", remaining, stats.CaloriesGoal, stats.GoalProgress)
}

func workoutReply(weightKg float64) string {
	if !(weightKg > 0) {
		weightKg = DefaultWeightKg
	}
	plan := []struct {
		day, activityID string
		minutes         float64
	}{
		{"Monday", "strength-training", 45},
		{"Wednesday", "running", 30},
		{"Friday", "hiit", 25},
		{"Sunday", "yoga-flow", 30},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here is a balanced week at %.0f kg:", weightKg)
	for _, p := range plan {
		activity, err := fitness.LookupActivity(p.activityID)
		if err != nil {
			continue
		}
		kcal, err := fitness.EstimateBurn(activity.MET, weightKg, p.minutes)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, " %s %s %.0f min (about %d kcal).", p.day, activity.Name, p.minutes, kcal)
	}
	return b.String()
}

// words splits a message into lower-case words.
func words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// containsAny reports whether any word starts with one of the keywords, so
// "goals" matches "goal" but "create" does not match "eat".
func containsAny(words []string, keywords ...string) bool {
	for _, w := range words {
		for _, k := range keywords {
			if strings.HasPrefix(w, k) {
				return true
			}
		}
	}
	return false
}
