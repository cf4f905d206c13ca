package domain

import "time"

// Task is a gamified objective completed by performing one tool action
type Task struct {
	ID          string     `json:"id"`
	PlayerID    string     `json:"player_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        Tool       `json:"type"`
	Points      int        `json:"points"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Position    int        `json:"position"`
}

// TaskTemplate is a catalogue entry used to seed a player's task list
type TaskTemplate struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Type        Tool   `yaml:"type" json:"type"`
	Points      int    `yaml:"points" json:"points"`
}

// TaskCatalogue is the on-disk task configuration
type TaskCatalogue struct {
	Tasks []TaskTemplate `yaml:"tasks" json:"tasks"`
}

// TaskCompletedMessagePrefix prefixes the notification shown when a task completes
const TaskCompletedMessagePrefix = "🎉 Task completed: "

// TaskCompletedMessage builds the user-visible completion notification
func TaskCompletedMessage(title string) string {
	return TaskCompletedMessagePrefix + title
}

// TaskCompletion is the outcome of completing a task
type TaskCompletion struct {
	Task        Task `json:"task"`
	TotalPoints int  `json:"total_points"`
	Newly       bool `json:"newly_completed"`
}
