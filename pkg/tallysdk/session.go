package tallysdk

import (
	"context"
	"fmt"
	"net/http"
)

// Session is an authenticated handle on the service. It carries the bearer
// token and exposes the endpoints that require one.
type Session struct {
	client *SDKClient
	token  string
}

// Token returns the raw bearer token, e.g. for persisting across restarts.
func (s *Session) Token() string { return s.token }

// ListTasks returns the caller's tasks.
func (s *Session) ListTasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	err := s.client.doJSON(ctx, http.MethodGet, "/v1/tasks", s.token, nil, &tasks)
	return tasks, err
}

// CreateTask adds a task to the caller's list.
func (s *Session) CreateTask(ctx context.Context, req TaskRequest) (Task, error) {
	var task Task
	err := s.client.doJSON(ctx, http.MethodPost, "/v1/tasks", s.token, req, &task)
	return task, err
}

// GetTask fetches one of the caller's tasks by id.
func (s *Session) GetTask(ctx context.Context, id int64) (Task, error) {
	var task Task
	err := s.client.doJSON(ctx, http.MethodGet, fmt.Sprintf("/v1/tasks/%d", id), s.token, nil, &task)
	return task, err
}

// UpdateTask replaces a task's title, description, and done flag.
func (s *Session) UpdateTask(ctx context.Context, id int64, req TaskRequest) (Task, error) {
	var task Task
	err := s.client.doJSON(ctx, http.MethodPut, fmt.Sprintf("/v1/tasks/%d", id), s.token, req, &task)
	return task, err
}

// DeleteTask removes one of the caller's tasks.
func (s *Session) DeleteTask(ctx context.Context, id int64) error {
	return s.client.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/v1/tasks/%d", id), s.token, nil, nil)
}

// ListCosts returns the shared expense ledger.
func (s *Session) ListCosts(ctx context.Context) ([]Cost, error) {
	var costs []Cost
	err := s.client.doJSON(ctx, http.MethodGet, "/v1/costs", s.token, nil, &costs)
	return costs, err
}

// CreateCost appends an entry to the ledger.
func (s *Session) CreateCost(ctx context.Context, req CostRequest) (Cost, error) {
	var cost Cost
	err := s.client.doJSON(ctx, http.MethodPost, "/v1/costs", s.token, req, &cost)
	return cost, err
}

// GetCost fetches a ledger entry by id.
func (s *Session) GetCost(ctx context.Context, id int64) (Cost, error) {
	var cost Cost
	err := s.client.doJSON(ctx, http.MethodGet, fmt.Sprintf("/v1/costs/%d", id), s.token, nil, &cost)
	return cost, err
}

// UpdateCost replaces a ledger entry.
func (s *Session) UpdateCost(ctx context.Context, id int64, req CostRequest) (Cost, error) {
	var cost Cost
	err := s.client.doJSON(ctx, http.MethodPut, fmt.Sprintf("/v1/costs/%d", id), s.token, req, &cost)
	return cost, err
}

// DeleteCost removes a ledger entry.
func (s *Session) DeleteCost(ctx context.Context, id int64) error {
	return s.client.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/v1/costs/%d", id), s.token, nil, nil)
}
