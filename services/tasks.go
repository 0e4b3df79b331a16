package services

import (
	"errors"

	"github.com/godocompany/employeadmin-api/models"
	"gorm.io/gorm"
)

// TasksService manages assignable tasks
type TasksService struct {
	DB *gorm.DB
}

// ListTasks gets all of the tasks
func (s *TasksService) ListTasks() ([]*models.Task, error) {
	var tasks []*models.Task
	if err := s.DB.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTask gets the task with the provided id, or nil if it does not exist
func (s *TasksService) GetTask(id uint64) (*models.Task, error) {
	var task models.Task
	err := s.DB.First(&task, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

// CreateTask persists a new task
func (s *TasksService) CreateTask(task *models.Task) error {
	return s.DB.Create(task).Error
}

// UpdateTask saves changes to a task
func (s *TasksService) UpdateTask(task *models.Task) error {
	return s.DB.Save(task).Error
}

// DeleteTask deletes a task
func (s *TasksService) DeleteTask(task *models.Task) error {
	return s.DB.Delete(task).Error
}
