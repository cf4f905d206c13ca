package handler

import (
	"net/http"

	"github.com/krishiquest/KrishiQuest_Go/internal/task"
)

// CompleteTaskRequest completes one task directly
type CompleteTaskRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=100"`
	TaskID   string `json:"task_id" validate:"required,max=100"`
}

// PointsResponse carries a player's points total
type PointsResponse struct {
	PlayerID string `json:"player_id"`
	Points   int    `json:"points"`
}

// HandleListTasks returns the player's tasks in list order
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Param player_id query string true "Player ID"
// @Success 200 {array} domain.Task
// @Router /api/v1/tasks [get]
func HandleListTasks(svc task.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetQueryParam(r, w, QueryParamPlayerID)
		if !ok {
			return
		}

		tasks, err := svc.ListTasks(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "List tasks", err)
			return
		}
		respondJSON(w, http.StatusOK, tasks)
	}
}

// HandleCompleteTask marks a task complete. Completing it again awards nothing.
// @Summary Complete task
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body CompleteTaskRequest true "Task"
// @Success 200 {object} domain.TaskCompletion
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/tasks/complete [post]
func HandleCompleteTask(svc task.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CompleteTaskRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Complete task"); err != nil {
			return
		}

		completion, err := svc.CompleteTask(r.Context(), req.PlayerID, req.TaskID)
		if err != nil {
			respondServiceError(w, r, "Complete task", err)
			return
		}
		respondJSON(w, http.StatusOK, completion)
	}
}

// HandleGetPoints returns the player's points total
// @Summary Get points
// @Tags tasks
// @Produce json
// @Param player_id query string true "Player ID"
// @Success 200 {object} PointsResponse
// @Router /api/v1/points [get]
func HandleGetPoints(svc task.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetQueryParam(r, w, QueryParamPlayerID)
		if !ok {
			return
		}

		points, err := svc.GetPoints(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "Get points", err)
			return
		}
		respondJSON(w, http.StatusOK, PointsResponse{PlayerID: playerID, Points: points})
	}
}
