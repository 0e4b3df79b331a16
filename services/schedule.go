package services

import (
	"errors"

	"github.com/godocompany/employeadmin-api/models"
	"gorm.io/gorm"
)

// ScheduleService manages calendar events and employee shifts
type ScheduleService struct {
	DB *gorm.DB
}

// ListEvents gets all of the events, newest id first
func (s *ScheduleService) ListEvents() ([]*models.Event, error) {
	var events []*models.Event
	if err := s.DB.Order("id DESC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// GetEvent gets the event with the provided id, or nil if it does not exist
func (s *ScheduleService) GetEvent(id uint64) (*models.Event, error) {
	var event models.Event
	err := s.DB.First(&event, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

// CreateEvent persists a new event
func (s *ScheduleService) CreateEvent(event *models.Event) error {
	return s.DB.Create(event).Error
}

// UpdateEvent saves changes to an event
func (s *ScheduleService) UpdateEvent(event *models.Event) error {
	return s.DB.Save(event).Error
}

// DeleteEvent deletes an event
func (s *ScheduleService) DeleteEvent(event *models.Event) error {
	return s.DB.Delete(event).Error
}

// ListShifts gets all of the shifts
func (s *ScheduleService) ListShifts() ([]*models.Shift, error) {
	var shifts []*models.Shift
	if err := s.DB.Find(&shifts).Error; err != nil {
		return nil, err
	}
	return shifts, nil
}

// GetShift gets the shift with the provided id, or nil if it does not exist
func (s *ScheduleService) GetShift(id uint64) (*models.Shift, error) {
	var shift models.Shift
	err := s.DB.First(&shift, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shift, nil
}

// CreateShift persists a new shift
func (s *ScheduleService) CreateShift(shift *models.Shift) error {
	return s.DB.Create(shift).Error
}

// UpdateShift saves changes to a shift
func (s *ScheduleService) UpdateShift(shift *models.Shift) error {
	return s.DB.Save(shift).Error
}

// DeleteShift deletes a shift
func (s *ScheduleService) DeleteShift(shift *models.Shift) error {
	return s.DB.Delete(shift).Error
}
