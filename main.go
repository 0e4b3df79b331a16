package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/godocompany/employeadmin-api/admin"
	"github.com/godocompany/employeadmin-api/models"
	"github.com/godocompany/employeadmin-api/services"
	socketio "github.com/googollee/go-socket.io"
	"github.com/googollee/go-socket.io/engineio"
	"github.com/googollee/go-socket.io/engineio/transport"
	"github.com/googollee/go-socket.io/engineio/transport/polling"
	"github.com/googollee/go-socket.io/engineio/transport/websocket"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {

	// Load the .env file
	err := godotenv.Load()
	if err != nil {
		fmt.Println("Error loading .env file: ", err)
	}

	//================================================================================
	// Create the database connection
	//================================================================================

	// Get the database driver for the database string
	dbDriver := ParseDatabaseDriver(os.Getenv("DB_URL"))
	if dbDriver == nil {
		log.Fatalln("Failed to create database driver. Check DB_URL environment variable")
	}

	// Create the database connection
	db, err := gorm.Open(dbDriver, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		panic("failed to connect database")
	}

	// Migrate the schema
	db.AutoMigrate(
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

	//================================================================================
	// Setup the WebSockets server
	//================================================================================

	// Get all of the allowed origins
	allowedOrigins := GetAllowedOrigins()

	// Create the server
	socketIoServer := socketio.NewServer(&engineio.Options{
		Transports: []transport.Transport{
			&polling.Transport{
				CheckOrigin: checkOrigin(allowedOrigins),
			},
			&websocket.Transport{
				CheckOrigin: checkOrigin(allowedOrigins),
			},
		},
	})
	go socketIoServer.Serve()

	//================================================================================
	// Create all the service instances
	//================================================================================

	chatService := &services.ChatService{DB: db}
	socketsService := &services.SocketsService{
		Server:      socketIoServer,
		ChatService: chatService,
		Registry:    services.NewRoomRegistry(),
	}
	dashboardService := &services.DashboardService{DB: db}
	employeesService := &services.EmployeesService{DB: db}
	tasksService := &services.TasksService{DB: db}
	scheduleService := &services.ScheduleService{DB: db}
	timeTrackingService := &services.TimeTrackingService{DB: db}
	leaveService := &services.LeaveService{DB: db}
	complianceService := &services.ComplianceService{DB: db}
	communicationsService := &services.CommunicationsService{DB: db}

	// Register the socket event handlers
	socketsService.Setup()

	//================================================================================
	// Setup the Gin HTTP router
	//================================================================================

	// Create the Gin router
	r := gin.Default()

	// Configure CORS for the API
	corsCfg := cors.DefaultConfig()
	if len(allowedOrigins) > 0 {
		corsCfg.AllowOrigins = allowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AddAllowHeaders("Accept", "User-Agent")
	r.Use(cors.New(corsCfg))

	// Create the API instance
	api := &admin.Server{
		DashboardService:      dashboardService,
		EmployeesService:      employeesService,
		TasksService:          tasksService,
		ScheduleService:       scheduleService,
		TimeTrackingService:   timeTrackingService,
		LeaveService:          leaveService,
		ComplianceService:     complianceService,
		CommunicationsService: communicationsService,
		ChatService:           chatService,
	}

	// Mount the API routes
	api.Setup(r.Group("admin"))

	// Create a mux to serve both the HTTP and Socket.IO servers
	mux := http.NewServeMux()
	mux.Handle("/socket.io/", socketIoServer)
	mux.Handle("/", r)

	// Run the server
	port, ok := os.LookupEnv("PORT")
	if !ok {
		port = "5000"
	}
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Panicln(err)
	}

}

// GetAllowedOrigins gets the slice of allowed CORS origins
func GetAllowedOrigins() []string {

	// Get the list of origins allowed
	env, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if !ok {
		return []string{}
	}

	// Create the slice for it
	origins := []string{}

	// Split up the env value
	originsRaw := strings.Split(env, ",")
	for _, originRaw := range originsRaw {
		origin := strings.TrimSpace(originRaw)
		if len(origin) > 0 {
			origins = append(origins, origin)
		}
	}

	// Return the origins slice
	return origins

}
