package services

import (
	"github.com/godocompany/employeadmin-api/models"
	"gorm.io/gorm"
)

// DashboardService computes the headline counts for the admin dashboard
type DashboardService struct {
	DB *gorm.DB
}

// DashboardSummary is the set of counts shown at the top of the dashboard
type DashboardSummary struct {
	ActiveEmployees int64 `json:"activeEmployees"`
	OpenTasks       int64 `json:"openTasks"`
	TodaysShifts    int64 `json:"todaysShifts"`
	TimeOffRequests int64 `json:"timeOffRequests"`
}

// GetSummary counts active employees, open tasks, active shifts, and
// pending time-off requests
func (s *DashboardService) GetSummary() (*DashboardSummary, error) {
	var summary DashboardSummary
	err := s.DB.
		Model(&models.Employee{}).
		Where("is_active = ?", true).
		Count(&summary.ActiveEmployees).
		Error
	if err != nil {
		return nil, err
	}
	err = s.DB.
		Model(&models.Task{}).
		Where("status = ?", "Open").
		Count(&summary.OpenTasks).
		Error
	if err != nil {
		return nil, err
	}
	err = s.DB.
		Model(&models.Shift{}).
		Where("status = ?", "Active").
		Count(&summary.TodaysShifts).
		Error
	if err != nil {
		return nil, err
	}
	err = s.DB.
		Model(&models.TimeOffRequest{}).
		Where("status = ?", "Pending").
		Count(&summary.TimeOffRequests).
		Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
