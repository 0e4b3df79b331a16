package services

import (
	"errors"

	"github.com/godocompany/employeadmin-api/models"
	"gorm.io/gorm"
)

// EmployeesService manages the employee roster
type EmployeesService struct {
	DB *gorm.DB
}

// ListEmployees gets all of the employees
func (s *EmployeesService) ListEmployees() ([]*models.Employee, error) {
	var employees []*models.Employee
	if err := s.DB.Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// GetEmployee gets the employee with the provided id, or nil if it does
// not exist
func (s *EmployeesService) GetEmployee(id uint64) (*models.Employee, error) {
	var employee models.Employee
	err := s.DB.First(&employee, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

// CreateEmployee persists a new employee
func (s *EmployeesService) CreateEmployee(employee *models.Employee) error {
	return s.DB.Create(employee).Error
}

// UpdateEmployee saves changes to an employee
func (s *EmployeesService) UpdateEmployee(employee *models.Employee) error {
	return s.DB.Save(employee).Error
}

// DeleteEmployee deletes an employee
func (s *EmployeesService) DeleteEmployee(employee *models.Employee) error {
	return s.DB.Delete(employee).Error
}
