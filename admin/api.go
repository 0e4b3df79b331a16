package admin

import (
	"github.com/gin-gonic/gin"
	"github.com/godocompany/employeadmin-api/admin/hooks"
	"github.com/godocompany/employeadmin-api/services"
)

// Server is the admin API server instance
type Server struct {
	DashboardService      *services.DashboardService
	EmployeesService      *services.EmployeesService
	TasksService          *services.TasksService
	ScheduleService       *services.ScheduleService
	TimeTrackingService   *services.TimeTrackingService
	LeaveService          *services.LeaveService
	ComplianceService     *services.ComplianceService
	CommunicationsService *services.CommunicationsService
	ChatService           *services.ChatService
}

// Setup mounts the admin API routes to the given group
func (s *Server) Setup(g *gin.RouterGroup) {

	// Dashboard
	g.GET("/dashboard/summary", hooks.DashboardSummary(s.DashboardService))

	// Employee management
	g.GET("/employees", hooks.ListEmployees(s.EmployeesService))
	g.GET("/employees/:id", hooks.GetEmployee(s.EmployeesService))
	g.POST("/employees", hooks.CreateEmployee(s.EmployeesService))
	g.PUT("/employees/:id", hooks.UpdateEmployee(s.EmployeesService))
	g.DELETE("/employees/:id", hooks.DeleteEmployee(s.EmployeesService))

	// Communications and the activity log
	g.GET("/communications", hooks.ListCommunications(s.CommunicationsService))
	g.GET("/communications/:id", hooks.GetCommunication(s.CommunicationsService))
	g.POST("/communications", hooks.CreateCommunication(s.CommunicationsService))
	g.PUT("/communications/:id", hooks.UpdateCommunication(s.CommunicationsService))
	g.DELETE("/communications/:id", hooks.DeleteCommunication(s.CommunicationsService))
	g.GET("/activity-log", hooks.ListActivity(s.CommunicationsService))
	g.GET("/activity-log/:id", hooks.GetActivity(s.CommunicationsService))
	g.POST("/activity-log", hooks.CreateActivity(s.CommunicationsService))
	g.PUT("/activity-log/:id", hooks.UpdateActivity(s.CommunicationsService))
	g.DELETE("/activity-log/:id", hooks.DeleteActivity(s.CommunicationsService))

	// Scheduling
	g.GET("/schedule/events", hooks.ListEvents(s.ScheduleService))
	g.GET("/schedule/events/:id", hooks.GetEvent(s.ScheduleService))
	g.POST("/schedule/events", hooks.CreateEvent(s.ScheduleService))
	g.PUT("/schedule/events/:id", hooks.UpdateEvent(s.ScheduleService))
	g.DELETE("/schedule/events/:id", hooks.DeleteEvent(s.ScheduleService))
	g.GET("/shifts", hooks.ListShifts(s.ScheduleService))
	g.GET("/shifts/:id", hooks.GetShift(s.ScheduleService))
	g.POST("/shifts", hooks.CreateShift(s.ScheduleService))
	g.PUT("/shifts/:id", hooks.UpdateShift(s.ScheduleService))
	g.DELETE("/shifts/:id", hooks.DeleteShift(s.ScheduleService))

	// Time tracking
	g.GET("/time/attendance", hooks.ListAttendance(s.TimeTrackingService))
	g.GET("/time/attendance/:id", hooks.GetAttendance(s.TimeTrackingService))
	g.POST("/time/attendance", hooks.CreateAttendance(s.TimeTrackingService))
	g.PUT("/time/attendance/:id", hooks.UpdateAttendance(s.TimeTrackingService))
	g.DELETE("/time/attendance/:id", hooks.DeleteAttendance(s.TimeTrackingService))
	g.GET("/performance", hooks.ListPerformance(s.TimeTrackingService))
	g.GET("/performance/:id", hooks.GetPerformance(s.TimeTrackingService))
	g.POST("/performance", hooks.CreatePerformance(s.TimeTrackingService))
	g.PUT("/performance/:id", hooks.UpdatePerformance(s.TimeTrackingService))
	g.DELETE("/performance/:id", hooks.DeletePerformance(s.TimeTrackingService))

	// Projects are mounted twice, under /time and at the top level. Both
	// groups operate on the same table; the dashboard still calls both.
	s.setupProjectRoutes(g.Group("time"))
	s.setupProjectRoutes(g)

	// Tasks
	g.GET("/tasks", hooks.ListTasks(s.TasksService))
	g.GET("/tasks/:id", hooks.GetTask(s.TasksService))
	g.POST("/tasks", hooks.CreateTask(s.TasksService))
	g.PUT("/tasks/:id", hooks.UpdateTask(s.TasksService))
	g.DELETE("/tasks/:id", hooks.DeleteTask(s.TasksService))

	// Leave management
	g.GET("/leave/balances", hooks.ListLeaveBalances(s.LeaveService))
	g.GET("/leave/balances/:id", hooks.GetLeaveBalance(s.LeaveService))
	g.POST("/leave/balances", hooks.CreateLeaveBalance(s.LeaveService))
	g.PUT("/leave/balances/:id", hooks.UpdateLeaveBalance(s.LeaveService))
	g.DELETE("/leave/balances/:id", hooks.DeleteLeaveBalance(s.LeaveService))
	g.GET("/leave/requests", hooks.ListLeaveRequests(s.LeaveService))
	g.GET("/leave/requests/:id", hooks.GetLeaveRequest(s.LeaveService))
	g.POST("/leave/requests", hooks.CreateLeaveRequest(s.LeaveService))
	g.PUT("/leave/requests/:id", hooks.UpdateLeaveRequest(s.LeaveService))
	g.DELETE("/leave/requests/:id", hooks.DeleteLeaveRequest(s.LeaveService))
	g.GET("/timeoff-requests", hooks.ListTimeOffRequests(s.LeaveService))
	g.GET("/timeoff-requests/:id", hooks.GetTimeOffRequest(s.LeaveService))
	g.POST("/timeoff-requests", hooks.CreateTimeOffRequest(s.LeaveService))
	g.PUT("/timeoff-requests/:id", hooks.UpdateTimeOffRequest(s.LeaveService))
	g.DELETE("/timeoff-requests/:id", hooks.DeleteTimeOffRequest(s.LeaveService))

	// Compliance
	g.GET("/compliance/documents", hooks.ListPolicyDocuments(s.ComplianceService))
	g.GET("/compliance/documents/:id", hooks.GetPolicyDocument(s.ComplianceService))
	g.POST("/compliance/documents", hooks.CreatePolicyDocument(s.ComplianceService))
	g.PUT("/compliance/documents/:id", hooks.UpdatePolicyDocument(s.ComplianceService))
	g.DELETE("/compliance/documents/:id", hooks.DeletePolicyDocument(s.ComplianceService))
	g.GET("/compliance/acknowledgements", hooks.ListAcknowledgements(s.ComplianceService))
	g.GET("/compliance/acknowledgements/:id", hooks.GetAcknowledgement(s.ComplianceService))
	g.POST("/compliance/acknowledgements", hooks.CreateAcknowledgement(s.ComplianceService))
	g.PUT("/compliance/acknowledgements/:id", hooks.UpdateAcknowledgement(s.ComplianceService))
	g.DELETE("/compliance/acknowledgements/:id", hooks.DeleteAcknowledgement(s.ComplianceService))
	g.GET("/compliance/ack-history", hooks.AckHistory(s.ComplianceService))

	// Chat administration
	g.GET("/chat/rooms", hooks.ListChatRooms(s.ChatService))
	g.GET("/chat/rooms/:id", hooks.GetChatRoom(s.ChatService))
	g.POST("/chat/rooms", hooks.CreateChatRoom(s.ChatService))
	g.DELETE("/chat/rooms/:id", hooks.DeleteChatRoom(s.ChatService))
	g.GET("/chat/members", hooks.ListChatMembers(s.ChatService))
	g.GET("/chat/members/:id", hooks.GetChatMember(s.ChatService))
	g.POST("/chat/members", hooks.CreateChatMember(s.ChatService))
	g.DELETE("/chat/members/:id", hooks.DeleteChatMember(s.ChatService))
	g.GET("/chat/messages", hooks.ListChatMessages(s.ChatService))

}

// setupProjectRoutes mounts the project CRUD routes to the given group
func (s *Server) setupProjectRoutes(g *gin.RouterGroup) {
	g.GET("/projects", hooks.ListProjects(s.TimeTrackingService))
	g.GET("/projects/:id", hooks.GetProject(s.TimeTrackingService))
	g.POST("/projects", hooks.CreateProject(s.TimeTrackingService))
	g.PUT("/projects/:id", hooks.UpdateProject(s.TimeTrackingService))
	g.DELETE("/projects/:id", hooks.DeleteProject(s.TimeTrackingService))
}
