package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/tallyhq/tally/internal/domain"
	"github.com/tallyhq/tally/internal/service"
	"github.com/tallyhq/tally/internal/store"
	"github.com/tallyhq/tally/pkg/httpx"
	"github.com/tallyhq/tally/pkg/slogx"
	"github.com/tallyhq/tally/pkg/tallysdk"
)

type TasksHandler struct {
	TaskService *service.TaskService
}

// HandleList godoc
//
//	@Summary		List Tasks Endpoint
//	@Description	List the authenticated user's tasks
//	@Tags			Tasks
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		tallysdk.Task
//	@Failure		401	{object}	tallysdk.MessageResponse	"detail"
//	@Router			/v1/tasks [get].
func (h *TasksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		unauthorized(w, "not authenticated")
		return
	}

	tasks, err := h.TaskService.ListTasks(ctx, userID)
	if err != nil {
		log.Error("failed to list tasks", "err", err)
		httpx.WriteDetail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	out := make([]tallysdk.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskToWire(t))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate godoc
//
//	@Summary		Create Task Endpoint
//	@Description	Add a task to the authenticated user's list
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		tallysdk.TaskRequest	true	"title, description, done"
//	@Success		201		{object}	tallysdk.Task
//	@Failure		401		{object}	tallysdk.MessageResponse	"detail"
//	@Failure		422		{object}	tallysdk.MessageResponse	"detail"
//	@Router			/v1/tasks [post].
func (h *TasksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		unauthorized(w, "not authenticated")
		return
	}

	var req tallysdk.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteDetail(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	task, err := h.TaskService.CreateTask(ctx, userID, service.TaskInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			httpx.WriteDetail(w, http.StatusUnprocessableEntity, "invalid task data")
			return
		}
		log.Error("failed to create task", "err", err)
		httpx.WriteDetail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, taskToWire(task))
}

// HandleGet godoc
//
//	@Summary		Get Task Endpoint
//	@Description	Fetch one of the authenticated user's tasks by id
//	@Tags			Tasks
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Task ID"
//	@Success		200	{object}	tallysdk.Task
//	@Failure		404	{object}	tallysdk.MessageResponse	"detail"
//	@Router			/v1/tasks/{id} [get].
func (h *TasksHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		unauthorized(w, "not authenticated")
		return
	}

	id, err := pathID(r)
	if err != nil {
		httpx.WriteDetail(w, http.StatusNotFound, "task not found")
		return
	}

	task, err := h.TaskService.GetTask(ctx, userID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteDetail(w, http.StatusNotFound, "task not found")
			return
		}
		log.Error("failed to get task", "err", err)
		httpx.WriteDetail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, taskToWire(task))
}

// HandleUpdate godoc
//
//	@Summary		Update Task Endpoint
//	@Description	Replace a task's title, description, and done flag
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int						true	"Task ID"
//	@Param			request	body		tallysdk.TaskRequest	true	"title, description, done"
//	@Success		200		{object}	tallysdk.Task
//	@Failure		404		{object}	tallysdk.MessageResponse	"detail"
//	@Failure		422		{object}	tallysdk.MessageResponse	"detail"
//	@Router			/v1/tasks/{id} [put].
func (h *TasksHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		unauthorized(w, "not authenticated")
		return
	}

	id, err := pathID(r)
	if err != nil {
		httpx.WriteDetail(w, http.StatusNotFound, "task not found")
		return
	}

	var req tallysdk.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteDetail(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	task, err := h.TaskService.UpdateTask(ctx, userID, id, service.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Done:        req.Done,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			httpx.WriteDetail(w, http.StatusUnprocessableEntity, "invalid task data")
		case errors.Is(err, store.ErrNotFound):
			httpx.WriteDetail(w, http.StatusNotFound, "task not found")
		default:
			log.Error("failed to update task", "err", err)
			httpx.WriteDetail(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, taskToWire(task))
}

// HandleDelete godoc
//
//	@Summary		Delete Task Endpoint
//	@Description	Remove one of the authenticated user's tasks
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Param			id	path	int	true	"Task ID"
//	@Success		204
//	@Failure		404	{object}	tallysdk.MessageResponse	"detail"
//	@Router			/v1/tasks/{id} [delete].
func (h *TasksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		unauthorized(w, "not authenticated")
		return
	}

	id, err := pathID(r)
	if err != nil {
		httpx.WriteDetail(w, http.StatusNotFound, "task not found")
		return
	}

	if err := h.TaskService.DeleteTask(ctx, userID, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteDetail(w, http.StatusNotFound, "task not found")
			return
		}
		log.Error("failed to delete task", "err", err)
		httpx.WriteDetail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func taskToWire(t domain.Task) tallysdk.Task {
	return tallysdk.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Done:        t.Done,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
