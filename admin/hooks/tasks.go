package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/godocompany/employeadmin-api/models"
	"github.com/godocompany/employeadmin-api/services"
)

func ListTasks(tasksService *services.TasksService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tasks, err := tasksService.ListTasks()
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, tasks)
	}
}

func GetTask(tasksService *services.TasksService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		task, err := tasksService.GetTask(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if task == nil {
			notFound(c, "Task not found")
			return
		}
		c.JSON(http.StatusOK, task)
	}
}

type TaskReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
	AssignedTo  *uint64 `json:"assigned_to"`
}

func CreateTask(tasksService *services.TasksService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TaskReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "title is required")
			return
		}
		if req.Title == nil {
			badRequest(c, "title is required")
			return
		}

		task := models.NewTask(*req.Title)
		if req.Description != nil {
			task.Description = *req.Description
		}
		if req.DueDate != nil {
			task.DueDate = *req.DueDate
		}
		if req.Priority != nil {
			task.Priority = *req.Priority
		}
		if req.Status != nil {
			task.Status = *req.Status
		}
		task.AssignedTo = req.AssignedTo

		if err := tasksService.CreateTask(task); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "Task created",
			"task_id": task.ID,
		})
	}
}

func UpdateTask(tasksService *services.TasksService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		task, err := tasksService.GetTask(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if task == nil {
			notFound(c, "Task not found")
			return
		}

		var req TaskReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "No input data")
			return
		}
		if req.Title != nil {
			task.Title = *req.Title
		}
		if req.Description != nil {
			task.Description = *req.Description
		}
		if req.DueDate != nil {
			task.DueDate = *req.DueDate
		}
		if req.Priority != nil {
			task.Priority = *req.Priority
		}
		if req.Status != nil {
			task.Status = *req.Status
		}
		if req.AssignedTo != nil {
			task.AssignedTo = req.AssignedTo
		}

		if err := tasksService.UpdateTask(task); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Task updated"})
	}
}

func DeleteTask(tasksService *services.TasksService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		task, err := tasksService.GetTask(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if task == nil {
			notFound(c, "Task not found")
			return
		}
		if err := tasksService.DeleteTask(task); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
	}
}
