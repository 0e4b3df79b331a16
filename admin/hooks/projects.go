package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/godocompany/employeadmin-api/models"
	"github.com/godocompany/employeadmin-api/services"
)

func ListProjects(timeTrackingService *services.TimeTrackingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		projects, err := timeTrackingService.ListProjects()
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, projects)
	}
}

func GetProject(timeTrackingService *services.TimeTrackingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		project, err := timeTrackingService.GetProject(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if project == nil {
			notFound(c, "Project not found")
			return
		}
		c.JSON(http.StatusOK, project)
	}
}

type ProjectReq struct {
	Name     *string `json:"name"`
	Progress *int    `json:"progress"`
}

func CreateProject(timeTrackingService *services.TimeTrackingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProjectReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Project name is required")
			return
		}
		if req.Name == nil {
			badRequest(c, "Project name is required")
			return
		}

		project := &models.Project{Name: *req.Name}
		if req.Progress != nil {
			project.Progress = *req.Progress
		}

		if err := timeTrackingService.CreateProject(project); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message":    "Project created",
			"project_id": project.ID,
		})
	}
}

func UpdateProject(timeTrackingService *services.TimeTrackingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		project, err := timeTrackingService.GetProject(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if project == nil {
			notFound(c, "Project not found")
			return
		}

		var req ProjectReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "No input data")
			return
		}
		if req.Name != nil {
			project.Name = *req.Name
		}
		if req.Progress != nil {
			project.Progress = *req.Progress
		}

		if err := timeTrackingService.UpdateProject(project); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Project updated"})
	}
}

func DeleteProject(timeTrackingService *services.TimeTrackingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		project, err := timeTrackingService.GetProject(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if project == nil {
			notFound(c, "Project not found")
			return
		}
		if err := timeTrackingService.DeleteProject(project); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
	}
}
