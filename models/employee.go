package models

// Employee is a single member of staff managed by the admin dashboard
type Employee struct {
	ID               uint64 `gorm:"primaryKey" json:"id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Department       string `json:"department"`
	IsActive         bool   `json:"is_active"`
	TwoFactorEnabled bool   `json:"twoFactor"`
	Role             string `json:"role"`
}

// NewEmployee creates an employee record with the default flags applied
func NewEmployee(firstName, lastName, department string) *Employee {
	return &Employee{
		FirstName:  firstName,
		LastName:   lastName,
		Department: department,
		IsActive:   true,
		Role:       "Employee",
	}
}
