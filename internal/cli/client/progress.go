package client

import (
	"context"
	"net/http"
)

// PerformanceMetrics are 0-100 scores tracked per user.
type PerformanceMetrics struct {
	Strength    int `json:"strength"`
	Endurance   int `json:"endurance"`
	Flexibility int `json:"flexibility"`
}

// MonthlyGoals are the user's targets for the current month.
type MonthlyGoals struct {
	WeightLoss float64 `json:"weightLoss"`
	Workouts   int     `json:"workouts"`
	Calories   int     `json:"calories"`
}

// WeeklyProgress accumulates within the current week.
type WeeklyProgress struct {
	Workouts int `json:"workouts"`
	Calories int `json:"calories"`
	Duration int `json:"duration,omitempty"`
}

// Progress is the backend's progress record for the current user.
type Progress struct {
	ID                string             `json:"_id"`
	UserID            string             `json:"userId"`
	WeightLoss        float64            `json:"weightLoss"`
	CaloriesBurned    int                `json:"caloriesBurned"`
	WorkoutsCompleted int                `json:"workoutsCompleted"`
	CurrentStreak     int                `json:"currentStreak,omitempty"`
	LongestStreak     int                `json:"longestStreak,omitempty"`
	Performance       PerformanceMetrics `json:"performanceMetrics"`
	Achievements      []string           `json:"achievements"`
	MonthlyGoals      MonthlyGoals       `json:"monthlyGoals"`
	WeeklyProgress    WeeklyProgress     `json:"weeklyProgress"`
	CreatedAt         string             `json:"createdAt"`
	UpdatedAt         string             `json:"updatedAt"`
}

// MyProgress fetches the current user's progress record.
func (c *Client) MyProgress(ctx context.Context) (*Progress, error) {
	var progress Progress
	if err := c.do(ctx, request{method: http.MethodGet, path: "/progress/me"}, &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

// UpdateWeightLoss records total weight lost, in kilograms.
func (c *Client) UpdateWeightLoss(ctx context.Context, weightLoss float64) error {
	body := struct {
		WeightLoss float64 `json:"weightLoss"`
	}{WeightLoss: weightLoss}
	return c.do(ctx, request{method: http.MethodPut, path: "/progress/weight-loss", body: body}, nil)
}

// UpdateCaloriesBurned records calories burned.
func (c *Client) UpdateCaloriesBurned(ctx context.Context, calories int) error {
	body := struct {
		Calories int `json:"calories"`
	}{Calories: calories}
	return c.do(ctx, request{method: http.MethodPut, path: "/progress/calories", body: body}, nil)
}

// CompleteWorkoutInput reports a finished workout session.
type CompleteWorkoutInput struct {
	WorkoutID      string `json:"workoutId"`
	Duration       int    `json:"duration"`
	CaloriesBurned int    `json:"caloriesBurned"`
}

// CompleteWorkout marks a workout session as done.
func (c *Client) CompleteWorkout(ctx context.Context, input CompleteWorkoutInput) error {
	return c.do(ctx, request{method: http.MethodPost, path: "/progress/complete-workout", body: input}, nil)
}

// AddAchievement appends an achievement to the user's record.
func (c *Client) AddAchievement(ctx context.Context, achievement string) error {
	body := struct {
		Achievement string `json:"achievement"`
	}{Achievement: achievement}
	return c.do(ctx, request{method: http.MethodPost, path: "/progress/achievement", body: body}, nil)
}

// UpdateMonthlyGoals replaces the user's monthly targets.
func (c *Client) UpdateMonthlyGoals(ctx context.Context, goals MonthlyGoals) error {
	return c.do(ctx, request{method: http.MethodPut, path: "/progress/monthly-goals", body: goals}, nil)
}
