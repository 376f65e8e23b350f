// Package client is a Go facade over the fittrack HTTP API. Every call
// returns either decoded response data or an error carrying the server's
// message from the {success:false, error:...} envelope.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to a fittrack server. After a successful Register or Login
// the bearer token is kept and sent on subsequent requests.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// New creates a Client for the given base URL, e.g. "http://localhost:3001".
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken overrides the bearer token, e.g. to restore a saved session.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the current bearer token, empty when unauthenticated.
func (c *Client) Token() string {
	return c.token
}

// User is the account projection returned by Register and Login.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthResponse carries the token and user returned by the auth endpoints.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Goal mirrors the server's goal representation.
type Goal struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	Target    float64   `json:"target"`
	Deadline  time.Time `json:"deadline"`
	Progress  float64   `json:"progress"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Workout mirrors the server's workout representation.
type Workout struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	Date           time.Time `json:"date"`
	Type           string    `json:"type"`
	Duration       float64   `json:"duration"`
	Distance       *float64  `json:"distance,omitempty"`
	CaloriesBurned *float64  `json:"caloriesBurned,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ProgressSeries is the goal progress history.
type ProgressSeries struct {
	Dates    []time.Time `json:"dates"`
	Progress []float64   `json:"progress"`
}

// GoalInput carries the fields for creating a goal.
type GoalInput struct {
	Title    string    `json:"title"`
	Type     string    `json:"type"`
	Target   float64   `json:"target"`
	Deadline time.Time `json:"deadline"`
}

// GoalUpdate is a merge-patch for a goal; nil fields are left unchanged.
type GoalUpdate struct {
	Title    *string    `json:"title,omitempty"`
	Type     *string    `json:"type,omitempty"`
	Target   *float64   `json:"target,omitempty"`
	Deadline *time.Time `json:"deadline,omitempty"`
	Progress *float64   `json:"progress,omitempty"`
}

// WorkoutInput carries the fields for logging a workout.
type WorkoutInput struct {
	Date           time.Time `json:"date"`
	Type           string    `json:"type"`
	Duration       float64   `json:"duration"`
	Distance       *float64  `json:"distance,omitempty"`
	CaloriesBurned *float64  `json:"caloriesBurned,omitempty"`
}

// WorkoutUpdate is a merge-patch for a workout; nil fields are left unchanged.
type WorkoutUpdate struct {
	Date           *time.Time `json:"date,omitempty"`
	Type           *string    `json:"type,omitempty"`
	Duration       *float64   `json:"duration,omitempty"`
	Distance       *float64   `json:"distance,omitempty"`
	CaloriesBurned *float64   `json:"caloriesBurned,omitempty"`
}

// APIError is returned when the server responds with a failure envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// Register creates an account and stores the returned token on the client.
func (c *Client) Register(email, name, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "name": name, "password": password}
	var resp AuthResponse
	if err := c.do(http.MethodPost, "/auth/register", body, &resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp, nil
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(email, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp AuthResponse
	if err := c.do(http.MethodPost, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp, nil
}

// CreateGoal creates a goal owned by the given user.
func (c *Client) CreateGoal(userID string, input GoalInput) (*Goal, error) {
	var goal Goal
	if err := c.do(http.MethodPost, "/goals/"+userID, input, &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

// ListGoals returns all goals owned by the given user.
func (c *Client) ListGoals(userID string) ([]Goal, error) {
	var goals []Goal
	if err := c.do(http.MethodGet, "/goals/"+userID, nil, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

// UpdateGoal applies a partial update and returns the updated goal.
func (c *Client) UpdateGoal(goalID string, update GoalUpdate) (*Goal, error) {
	var goal Goal
	if err := c.do(http.MethodPut, "/goals/"+goalID, update, &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

// DeleteGoal deletes a goal.
func (c *Client) DeleteGoal(goalID string) error {
	return c.do(http.MethodDelete, "/goals/"+goalID, nil, nil)
}

// GoalProgress returns the progress history for a goal.
func (c *Client) GoalProgress(goalID string) (*ProgressSeries, error) {
	var series ProgressSeries
	if err := c.do(http.MethodGet, "/goals/"+goalID+"/progress", nil, &series); err != nil {
		return nil, err
	}
	return &series, nil
}

// CreateWorkout logs a workout for the given user.
func (c *Client) CreateWorkout(userID string, input WorkoutInput) (*Workout, error) {
	var workout Workout
	if err := c.do(http.MethodPost, "/workouts/"+userID, input, &workout); err != nil {
		return nil, err
	}
	return &workout, nil
}

// ListWorkouts returns all workouts logged by the given user.
func (c *Client) ListWorkouts(userID string) ([]Workout, error) {
	var workouts []Workout
	if err := c.do(http.MethodGet, "/workouts/"+userID, nil, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// UpdateWorkout applies a partial update and returns the updated workout.
func (c *Client) UpdateWorkout(workoutID string, update WorkoutUpdate) (*Workout, error) {
	var workout Workout
	if err := c.do(http.MethodPut, "/workouts/"+workoutID, update, &workout); err != nil {
		return nil, err
	}
	return &workout, nil
}

// DeleteWorkout deletes a workout.
func (c *Client) DeleteWorkout(workoutID string) error {
	return c.do(http.MethodDelete, "/workouts/"+workoutID, nil, nil)
}

// do performs one request. On non-2xx responses it decodes the failure
// envelope and returns an APIError with the server's message.
func (c *Client) do(method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr != nil || envelope.Error == "" {
			return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: envelope.Error}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
