package services

import (
	"errors"

	"github.com/godocompany/employeadmin-api/models"
	"gorm.io/gorm"
)

// TimeTrackingService manages attendance records, projects, and daily
// performance roll-ups
type TimeTrackingService struct {
	DB *gorm.DB
}

// ListAttendance gets all attendance records, newest date first
func (s *TimeTrackingService) ListAttendance() ([]*models.Attendance, error) {
	var records []*models.Attendance
	if err := s.DB.Order("date DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// GetAttendance gets the attendance record with the provided id, or nil
func (s *TimeTrackingService) GetAttendance(id uint64) (*models.Attendance, error) {
	var record models.Attendance
	err := s.DB.First(&record, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// CreateAttendance persists a new attendance record
func (s *TimeTrackingService) CreateAttendance(record *models.Attendance) error {
	return s.DB.Create(record).Error
}

// UpdateAttendance saves changes to an attendance record
func (s *TimeTrackingService) UpdateAttendance(record *models.Attendance) error {
	return s.DB.Save(record).Error
}

// DeleteAttendance deletes an attendance record
func (s *TimeTrackingService) DeleteAttendance(record *models.Attendance) error {
	return s.DB.Delete(record).Error
}

// ListProjects gets all of the projects
func (s *TimeTrackingService) ListProjects() ([]*models.Project, error) {
	var projects []*models.Project
	if err := s.DB.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject gets the project with the provided id, or nil
func (s *TimeTrackingService) GetProject(id uint64) (*models.Project, error) {
	var project models.Project
	err := s.DB.First(&project, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

// CreateProject persists a new project
func (s *TimeTrackingService) CreateProject(project *models.Project) error {
	return s.DB.Create(project).Error
}

// UpdateProject saves changes to a project
func (s *TimeTrackingService) UpdateProject(project *models.Project) error {
	return s.DB.Save(project).Error
}

// DeleteProject deletes a project
func (s *TimeTrackingService) DeleteProject(project *models.Project) error {
	return s.DB.Delete(project).Error
}

// ListPerformance gets all of the performance roll-ups
func (s *TimeTrackingService) ListPerformance() ([]*models.Performance, error) {
	var records []*models.Performance
	if err := s.DB.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// GetPerformance gets the performance roll-up with the provided id, or nil
func (s *TimeTrackingService) GetPerformance(id uint64) (*models.Performance, error) {
	var record models.Performance
	err := s.DB.First(&record, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// CreatePerformance persists a new performance roll-up
func (s *TimeTrackingService) CreatePerformance(record *models.Performance) error {
	return s.DB.Create(record).Error
}

// UpdatePerformance saves changes to a performance roll-up
func (s *TimeTrackingService) UpdatePerformance(record *models.Performance) error {
	return s.DB.Save(record).Error
}

// DeletePerformance deletes a performance roll-up
func (s *TimeTrackingService) DeletePerformance(record *models.Performance) error {
	return s.DB.Delete(record).Error
}
