package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/godocompany/employeadmin-api/models"
	"github.com/godocompany/employeadmin-api/services"
)

func ListEmployees(employeesService *services.EmployeesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		employees, err := employeesService.ListEmployees()
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, employees)
	}
}

func GetEmployee(employeesService *services.EmployeesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		employee, err := employeesService.GetEmployee(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if employee == nil {
			notFound(c, "Employee not found")
			return
		}
		c.JSON(http.StatusOK, employee)
	}
}

// EmployeeReq carries the writable employee fields. Pointers distinguish
// an omitted field from a zero value.
type EmployeeReq struct {
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Department *string `json:"department"`
	IsActive   *bool   `json:"is_active"`
	TwoFactor  *bool   `json:"twoFactor"`
	Role       *string `json:"role"`
}

func CreateEmployee(employeesService *services.EmployeesService) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the request body
		var req EmployeeReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Missing required fields")
			return
		}
		if req.FirstName == nil || req.LastName == nil || req.Department == nil {
			badRequest(c, "Missing required fields")
			return
		}

		// Build the employee with defaults, then apply the optional fields
		employee := models.NewEmployee(*req.FirstName, *req.LastName, *req.Department)
		if req.IsActive != nil {
			employee.IsActive = *req.IsActive
		}
		if req.TwoFactor != nil {
			employee.TwoFactorEnabled = *req.TwoFactor
		}
		if req.Role != nil {
			employee.Role = *req.Role
		}

		if err := employeesService.CreateEmployee(employee); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message":     "Employee created",
			"employee_id": employee.ID,
		})

	}
}

func UpdateEmployee(employeesService *services.EmployeesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		employee, err := employeesService.GetEmployee(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if employee == nil {
			notFound(c, "Employee not found")
			return
		}

		var req EmployeeReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "No input data")
			return
		}

		// Only the supplied fields change
		if req.FirstName != nil {
			employee.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			employee.LastName = *req.LastName
		}
		if req.Department != nil {
			employee.Department = *req.Department
		}
		if req.IsActive != nil {
			employee.IsActive = *req.IsActive
		}
		if req.TwoFactor != nil {
			employee.TwoFactorEnabled = *req.TwoFactor
		}
		if req.Role != nil {
			employee.Role = *req.Role
		}

		if err := employeesService.UpdateEmployee(employee); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Employee updated"})
	}
}

func DeleteEmployee(employeesService *services.EmployeesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		employee, err := employeesService.GetEmployee(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if employee == nil {
			notFound(c, "Employee not found")
			return
		}
		if err := employeesService.DeleteEmployee(employee); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
	}
}
