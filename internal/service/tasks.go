package service

import (
	"context"
	"strings"

	"github.com/tallyhq/tally/internal/domain"
	"github.com/tallyhq/tally/internal/store"
)

const maxTaskTitleLength = 120

// TaskService owns the per-user task list. Every operation is scoped to the
// calling user; a task id belonging to someone else behaves like a missing id.
type TaskService struct {
	Store store.Store
}

type TaskInput struct {
	Title       string
	Description string
	Done        bool
}

func (in TaskInput) validate() error {
	title := strings.TrimSpace(in.Title)
	if title == "" || len(title) > maxTaskTitleLength {
		return ErrInvalidInput
	}
	return nil
}

func (s *TaskService) CreateTask(ctx context.Context, userID int64, in TaskInput) (domain.Task, error) {
	if err := in.validate(); err != nil {
		return domain.Task{}, err
	}
	return s.Store.Tasks().CreateTask(ctx, userID, strings.TrimSpace(in.Title), in.Description)
}

func (s *TaskService) GetTask(ctx context.Context, userID, id int64) (domain.Task, error) {
	return s.Store.Tasks().GetTask(ctx, userID, id)
}

func (s *TaskService) ListTasks(ctx context.Context, userID int64) ([]domain.Task, error) {
	return s.Store.Tasks().ListUserTasks(ctx, userID)
}

func (s *TaskService) UpdateTask(ctx context.Context, userID, id int64, in TaskInput) (domain.Task, error) {
	if err := in.validate(); err != nil {
		return domain.Task{}, err
	}

	task, err := s.Store.Tasks().GetTask(ctx, userID, id)
	if err != nil {
		return domain.Task{}, err
	}

	task.Title = strings.TrimSpace(in.Title)
	task.Description = in.Description
	task.Done = in.Done
	return s.Store.Tasks().UpdateTask(ctx, task)
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, id int64) error {
	return s.Store.Tasks().DeleteTask(ctx, userID, id)
}
