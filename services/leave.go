package services

import (
	"errors"

	"github.com/godocompany/employeadmin-api/models"
	"gorm.io/gorm"
)

// LeaveService manages leave balances, leave requests, and the older
// time-off request records
type LeaveService struct {
	DB *gorm.DB
}

// ListBalances gets all of the leave balances
func (s *LeaveService) ListBalances() ([]*models.EmployeeLeaveBalance, error) {
	var balances []*models.EmployeeLeaveBalance
	if err := s.DB.Find(&balances).Error; err != nil {
		return nil, err
	}
	return balances, nil
}

// GetBalance gets the leave balance with the provided id, or nil
func (s *LeaveService) GetBalance(id uint64) (*models.EmployeeLeaveBalance, error) {
	var balance models.EmployeeLeaveBalance
	err := s.DB.First(&balance, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &balance, nil
}

// CreateBalance persists a new leave balance
func (s *LeaveService) CreateBalance(balance *models.EmployeeLeaveBalance) error {
	return s.DB.Create(balance).Error
}

// UpdateBalance saves changes to a leave balance
func (s *LeaveService) UpdateBalance(balance *models.EmployeeLeaveBalance) error {
	return s.DB.Save(balance).Error
}

// DeleteBalance deletes a leave balance
func (s *LeaveService) DeleteBalance(balance *models.EmployeeLeaveBalance) error {
	return s.DB.Delete(balance).Error
}

// ListLeaveRequests gets all of the leave requests, newest first
func (s *LeaveService) ListLeaveRequests() ([]*models.LeaveRequest, error) {
	var requests []*models.LeaveRequest
	if err := s.DB.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// GetLeaveRequest gets the leave request with the provided id, or nil
func (s *LeaveService) GetLeaveRequest(id uint64) (*models.LeaveRequest, error) {
	var request models.LeaveRequest
	err := s.DB.First(&request, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

// CreateLeaveRequest persists a new leave request
func (s *LeaveService) CreateLeaveRequest(request *models.LeaveRequest) error {
	return s.DB.Create(request).Error
}

// UpdateLeaveRequest saves changes to a leave request
func (s *LeaveService) UpdateLeaveRequest(request *models.LeaveRequest) error {
	return s.DB.Save(request).Error
}

// DeleteLeaveRequest deletes a leave request
func (s *LeaveService) DeleteLeaveRequest(request *models.LeaveRequest) error {
	return s.DB.Delete(request).Error
}

// ListTimeOffRequests gets all of the time-off requests
func (s *LeaveService) ListTimeOffRequests() ([]*models.TimeOffRequest, error) {
	var requests []*models.TimeOffRequest
	if err := s.DB.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// GetTimeOffRequest gets the time-off request with the provided id, or nil
func (s *LeaveService) GetTimeOffRequest(id uint64) (*models.TimeOffRequest, error) {
	var request models.TimeOffRequest
	err := s.DB.First(&request, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

// CreateTimeOffRequest persists a new time-off request
func (s *LeaveService) CreateTimeOffRequest(request *models.TimeOffRequest) error {
	return s.DB.Create(request).Error
}

// UpdateTimeOffRequest saves changes to a time-off request
func (s *LeaveService) UpdateTimeOffRequest(request *models.TimeOffRequest) error {
	return s.DB.Save(request).Error
}

// DeleteTimeOffRequest deletes a time-off request
func (s *LeaveService) DeleteTimeOffRequest(request *models.TimeOffRequest) error {
	return s.DB.Delete(request).Error
}
