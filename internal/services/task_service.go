package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/karunakaran31429-maker/blogboard-api/internal/models"
	"github.com/karunakaran31429-maker/blogboard-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTitleRequired      = errors.New("title is required")
	ErrInvalidPriority    = errors.New("priority must be one of low, medium, high")
	ErrTaskNotFound       = errors.New("task not found")
	ErrFailedToCreateTask = errors.New("failed to create task")
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title       string
	Description string
	Priority    string
}

// Create persists a new pending task. Priority defaults to medium.
func (s *TaskService) Create(input CreateTaskInput) (*models.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	priority := models.TaskPriorityMedium
	if input.Priority != "" {
		switch models.TaskPriority(input.Priority) {
		case models.TaskPriorityLow, models.TaskPriorityMedium, models.TaskPriorityHigh:
			priority = models.TaskPriority(input.Priority)
		default:
			return nil, ErrInvalidPriority
		}
	}

	task := &models.Task{
		Title:       title,
		Description: input.Description,
		Priority:    priority,
		Status:      models.TaskStatusPending,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateTask, err)
	}

	return task, nil
}

// List returns all live tasks.
func (s *TaskService) List() ([]models.Task, error) {
	tasks, err := s.taskRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Complete marks a task completed. The transition is one-way and idempotent.
func (s *TaskService) Complete(id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	task.Status = models.TaskStatusCompleted
	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// Delete removes a task. Storage failures are wrapped, not fatal.
func (s *TaskService) Delete(id uint64) error {
	if _, err := s.taskRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.taskRepo.Delete(id); err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteFailed, err)
	}

	return nil
}
