package admin_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/godocompany/employeadmin-api/admin"
	"github.com/godocompany/employeadmin-api/models"
	"github.com/godocompany/employeadmin-api/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestServer builds the full admin router over a fresh in-memory
// database
func setupTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.Employee{},
		&models.Task{},
		&models.Shift{},
		&models.TimeOffRequest{},
		&models.Performance{},
		&models.ActivityLog{},
		&models.Event{},
		&models.EmployeeLeaveBalance{},
		&models.LeaveRequest{},
		&models.PolicyDocument{},
		&models.PolicyAcknowledgement{},
		&models.Attendance{},
		&models.Project{},
		&models.Communication{},
		&models.ChatRoom{},
		&models.ChatRoomMember{},
		&models.ChatMessage{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	api := &admin.Server{
		DashboardService:      &services.DashboardService{DB: db},
		EmployeesService:      &services.EmployeesService{DB: db},
		TasksService:          &services.TasksService{DB: db},
		ScheduleService:       &services.ScheduleService{DB: db},
		TimeTrackingService:   &services.TimeTrackingService{DB: db},
		LeaveService:          &services.LeaveService{DB: db},
		ComplianceService:     &services.ComplianceService{DB: db},
		CommunicationsService: &services.CommunicationsService{DB: db},
		ChatService:           &services.ChatService{DB: db},
	}

	r := gin.New()
	api.Setup(r.Group("admin"))
	return r, db
}

// doJSON performs a request with a JSON body and decodes the JSON response
// into out when out is non-nil
func doJSON(t *testing.T, r *gin.Engine, method, path string, body, out interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if out != nil {
		if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
			t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
		}
	}
	return w
}

func TestEmployeeCRUD(t *testing.T) {
	r, _ := setupTestServer(t)

	// Create with only the required fields
	var created struct {
		EmployeeID uint64 `json:"employee_id"`
	}
	w := doJSON(t, r, http.MethodPost, "/admin/employees", gin.H{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"department": "Engineering",
	}, &created)
	if w.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", w.Code, w.Body.String())
	}
	if created.EmployeeID == 0 {
		t.Fatal("create returned no employee_id")
	}

	// Read it back: supplied fields plus defaults
	var employee models.Employee
	w = doJSON(t, r, http.MethodGet, "/admin/employees/1", nil, &employee)
	if w.Code != http.StatusOK {
		t.Fatalf("get returned %d", w.Code)
	}
	if employee.FirstName != "Ada" || employee.LastName != "Lovelace" || employee.Department != "Engineering" {
		t.Errorf("get returned %+v", employee)
	}
	if !employee.IsActive || employee.TwoFactorEnabled || employee.Role != "Employee" {
		t.Errorf("defaults not applied: %+v", employee)
	}

	// Partial update changes only the supplied field
	w = doJSON(t, r, http.MethodPut, "/admin/employees/1", gin.H{"department": "Research"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("update returned %d: %s", w.Code, w.Body.String())
	}
	doJSON(t, r, http.MethodGet, "/admin/employees/1", nil, &employee)
	if employee.Department != "Research" {
		t.Errorf("department not updated: %+v", employee)
	}
	if employee.FirstName != "Ada" || !employee.IsActive || employee.Role != "Employee" {
		t.Errorf("partial update disturbed other fields: %+v", employee)
	}

	// Delete, then read back
	w = doJSON(t, r, http.MethodDelete, "/admin/employees/1", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete returned %d", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/admin/employees/1", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete returned %d, want 404", w.Code)
	}
}

func TestEmployeeCreateMissingFields(t *testing.T) {
	r, db := setupTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/admin/employees", gin.H{"first_name": "Ada"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("create with missing fields returned %d, want 400", w.Code)
	}

	var count int64
	db.Model(&models.Employee{}).Count(&count)
	if count != 0 {
		t.Errorf("rejected create still wrote %d rows", count)
	}
}

func TestTaskDefaults(t *testing.T) {
	r, _ := setupTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/admin/tasks", gin.H{"title": "Ship it"}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", w.Code, w.Body.String())
	}

	var task models.Task
	doJSON(t, r, http.MethodGet, "/admin/tasks/1", nil, &task)
	if task.Priority != "Medium" || task.Status != "Open" {
		t.Errorf("task defaults not applied: %+v", task)
	}
	if task.AssignedTo != nil {
		t.Errorf("unassigned task has assigned_to %v", *task.AssignedTo)
	}
}

func TestUpdateMissingRecord(t *testing.T) {
	r, _ := setupTestServer(t)

	w := doJSON(t, r, http.MethodPut, "/admin/tasks/99", gin.H{"title": "nope"}, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("update of missing task returned %d, want 404", w.Code)
	}
	w = doJSON(t, r, http.MethodDelete, "/admin/projects/99", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("delete of missing project returned %d, want 404", w.Code)
	}
}

func TestProjectRoutesMountedTwice(t *testing.T) {
	r, _ := setupTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/admin/projects", gin.H{"name": "Apollo"}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", w.Code, w.Body.String())
	}

	// The same row is visible through the /time mount
	var project models.Project
	w = doJSON(t, r, http.MethodGet, "/admin/time/projects/1", nil, &project)
	if w.Code != http.StatusOK {
		t.Fatalf("get via /time mount returned %d", w.Code)
	}
	if project.Name != "Apollo" {
		t.Errorf("got project %+v", project)
	}
}

func TestAckHistory(t *testing.T) {
	r, db := setupTestServer(t)

	// Seed two policies and acknowledgements for two users
	conduct := models.NewPolicyDocument("Code of Conduct")
	security := models.NewPolicyDocument("Security Policy")
	db.Create(conduct)
	db.Create(security)

	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	olderAck := models.NewPolicyAcknowledgement(conduct.ID, 7)
	olderAck.AckDate = base
	newerAck := models.NewPolicyAcknowledgement(security.ID, 7)
	newerAck.AckDate = base.Add(48 * time.Hour)
	otherUser := models.NewPolicyAcknowledgement(conduct.ID, 8)
	otherUser.AckDate = base
	db.Create(olderAck)
	db.Create(newerAck)
	db.Create(otherUser)

	var entries []struct {
		PolicyID  uint64 `json:"policy_id"`
		Title     string `json:"title"`
		AckStatus string `json:"ack_status"`
	}
	w := doJSON(t, r, http.MethodGet, "/admin/compliance/ack-history?user_id=7", nil, &entries)
	if w.Code != http.StatusOK {
		t.Fatalf("ack-history returned %d: %s", w.Code, w.Body.String())
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	// Most recent first, joined with the policy titles
	if entries[0].Title != "Security Policy" || entries[1].Title != "Code of Conduct" {
		t.Errorf("entries out of order: %q then %q", entries[0].Title, entries[1].Title)
	}
	if entries[0].AckStatus != "Acknowledged" {
		t.Errorf("ack_status = %q", entries[0].AckStatus)
	}

	// The user_id query param is required
	w = doJSON(t, r, http.MethodGet, "/admin/compliance/ack-history", nil, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("ack-history without user_id returned %d, want 400", w.Code)
	}
}

func TestDashboardSummary(t *testing.T) {
	r, db := setupTestServer(t)

	active := models.NewEmployee("Ada", "Lovelace", "Engineering")
	inactive := models.NewEmployee("Grace", "Hopper", "Engineering")
	inactive.IsActive = false
	db.Create(active)
	db.Create(inactive)

	open := models.NewTask("Open task")
	done := models.NewTask("Done task")
	done.Status = "Done"
	db.Create(open)
	db.Create(done)

	db.Create(models.NewShift(active.ID, "09:00", "17:00"))
	db.Create(models.NewTimeOffRequest(active.ID, "2025-07-01", "2025-07-03"))

	var summary struct {
		ActiveEmployees int64 `json:"activeEmployees"`
		OpenTasks       int64 `json:"openTasks"`
		TodaysShifts    int64 `json:"todaysShifts"`
		TimeOffRequests int64 `json:"timeOffRequests"`
	}
	w := doJSON(t, r, http.MethodGet, "/admin/dashboard/summary", nil, &summary)
	if w.Code != http.StatusOK {
		t.Fatalf("summary returned %d", w.Code)
	}
	if summary.ActiveEmployees != 1 || summary.OpenTasks != 1 || summary.TodaysShifts != 1 || summary.TimeOffRequests != 1 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestChatMessagesEndpoint(t *testing.T) {
	r, db := setupTestServer(t)

	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	first := models.NewChatMessage(1, 5, "first")
	first.Timestamp = base
	second := models.NewChatMessage(1, 6, "second")
	second.Timestamp = base.Add(time.Minute)
	other := models.NewChatMessage(2, 5, "elsewhere")
	other.Timestamp = base
	db.Create(second)
	db.Create(first)
	db.Create(other)

	var msgs []models.ChatMessage
	w := doJSON(t, r, http.MethodGet, "/admin/chat/messages?room_id=1", nil, &msgs)
	if w.Code != http.StatusOK {
		t.Fatalf("messages returned %d", w.Code)
	}
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if msgs[0].Content != "first" || msgs[1].Content != "second" {
		t.Errorf("messages out of order: %q then %q", msgs[0].Content, msgs[1].Content)
	}
}

func TestChatRoomLifecycle(t *testing.T) {
	r, _ := setupTestServer(t)

	var created struct {
		RoomID uint64 `json:"room_id"`
	}
	w := doJSON(t, r, http.MethodPost, "/admin/chat/rooms", gin.H{"name": "general"}, &created)
	if w.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", w.Code, w.Body.String())
	}

	var rooms []models.ChatRoom
	doJSON(t, r, http.MethodGet, "/admin/chat/rooms", nil, &rooms)
	if len(rooms) != 1 || rooms[0].Name != "general" {
		t.Fatalf("list returned %+v", rooms)
	}

	w = doJSON(t, r, http.MethodDelete, "/admin/chat/rooms/1", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete returned %d", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/admin/chat/rooms/1", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete returned %d, want 404", w.Code)
	}
}
