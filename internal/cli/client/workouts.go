package client

import (
	"context"
	"fmt"
	"net/http"
)

// Exercise is a single entry of a workout sheet.
type Exercise struct {
	ID       string  `json:"_id,omitempty"`
	Name     string  `json:"name"`
	Sets     int     `json:"sets,omitempty"`
	Reps     int     `json:"reps,omitempty"`
	Weight   float64 `json:"weight,omitempty"`
	Duration int     `json:"duration,omitempty"`
	Notes    string  `json:"notes,omitempty"`
}

// Workout is a user's workout sheet ("file" in the backend's vocabulary).
type Workout struct {
	ID          string     `json:"_id"`
	UserID      string     `json:"userId"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Exercises   []Exercise `json:"exercises"`
	CreatedAt   string     `json:"createdAt"`
	UpdatedAt   string     `json:"updatedAt"`
}

// WorkoutInput creates a workout sheet for a user.
type WorkoutInput struct {
	UserID    string     `json:"userId"`
	Name      string     `json:"name"`
	Exercises []Exercise `json:"exercises"`
}

// CreateWorkout creates a workout sheet.
func (c *Client) CreateWorkout(ctx context.Context, input WorkoutInput) (*Workout, error) {
	var workout Workout
	if err := c.do(ctx, request{method: http.MethodPost, path: "/files/createFile", body: input}, &workout); err != nil {
		return nil, err
	}
	return &workout, nil
}

// Workouts lists every workout sheet. Trainer/admin use.
func (c *Client) Workouts(ctx context.Context) ([]Workout, error) {
	var workouts []Workout
	if err := c.do(ctx, request{method: http.MethodGet, path: "/files/"}, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// WorkoutByUser fetches the workout sheet assigned to a user.
func (c *Client) WorkoutByUser(ctx context.Context, userID string) (*Workout, error) {
	body := struct {
		UserID string `json:"userId"`
	}{UserID: userID}

	var workout Workout
	if err := c.do(ctx, request{method: http.MethodPost, path: "/files/getFileByUserId", body: body}, &workout); err != nil {
		return nil, err
	}
	return &workout, nil
}

// UpdateWorkout replaces a workout sheet by ID.
func (c *Client) UpdateWorkout(ctx context.Context, workoutID string, input WorkoutInput) (*Workout, error) {
	var workout Workout
	path := fmt.Sprintf("/files/updateFileById/%s", workoutID)
	if err := c.do(ctx, request{method: http.MethodPut, path: path, body: input}, &workout); err != nil {
		return nil, err
	}
	return &workout, nil
}

// ExercisesByDay fetches the exercises scheduled for a weekday.
func (c *Client) ExercisesByDay(ctx context.Context, day, userID string) ([]Exercise, error) {
	var exercises []Exercise
	path := fmt.Sprintf("/files/day/%s/%s", day, userID)
	if err := c.do(ctx, request{method: http.MethodGet, path: path}, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

// UpdateExercisesByDay replaces the exercises scheduled for a weekday.
func (c *Client) UpdateExercisesByDay(ctx context.Context, day string, exercises []Exercise) error {
	body := struct {
		Exercises []Exercise `json:"exercises"`
	}{Exercises: exercises}

	path := fmt.Sprintf("/files/day/%s", day)
	return c.do(ctx, request{method: http.MethodPut, path: path, body: body}, nil)
}
