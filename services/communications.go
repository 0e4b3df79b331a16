package services

import (
	"errors"

	"github.com/godocompany/employeadmin-api/models"
	"gorm.io/gorm"
)

// CommunicationsService manages announcements and the activity log
type CommunicationsService struct {
	DB *gorm.DB
}

// ListCommunications gets all of the announcements, newest first
func (s *CommunicationsService) ListCommunications() ([]*models.Communication, error) {
	var comms []*models.Communication
	if err := s.DB.Order("created_at DESC").Find(&comms).Error; err != nil {
		return nil, err
	}
	return comms, nil
}

// GetCommunication gets the announcement with the provided id, or nil
func (s *CommunicationsService) GetCommunication(id uint64) (*models.Communication, error) {
	var comm models.Communication
	err := s.DB.First(&comm, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comm, nil
}

// CreateCommunication persists a new announcement
func (s *CommunicationsService) CreateCommunication(comm *models.Communication) error {
	return s.DB.Create(comm).Error
}

// UpdateCommunication saves changes to an announcement
func (s *CommunicationsService) UpdateCommunication(comm *models.Communication) error {
	return s.DB.Save(comm).Error
}

// DeleteCommunication deletes an announcement
func (s *CommunicationsService) DeleteCommunication(comm *models.Communication) error {
	return s.DB.Delete(comm).Error
}

// ListActivity gets all of the activity log entries
func (s *CommunicationsService) ListActivity() ([]*models.ActivityLog, error) {
	var entries []*models.ActivityLog
	if err := s.DB.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// GetActivity gets the activity log entry with the provided id, or nil
func (s *CommunicationsService) GetActivity(id uint64) (*models.ActivityLog, error) {
	var entry models.ActivityLog
	err := s.DB.First(&entry, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// CreateActivity persists a new activity log entry
func (s *CommunicationsService) CreateActivity(entry *models.ActivityLog) error {
	return s.DB.Create(entry).Error
}

// UpdateActivity saves changes to an activity log entry
func (s *CommunicationsService) UpdateActivity(entry *models.ActivityLog) error {
	return s.DB.Save(entry).Error
}

// DeleteActivity deletes an activity log entry
func (s *CommunicationsService) DeleteActivity(entry *models.ActivityLog) error {
	return s.DB.Delete(entry).Error
}
