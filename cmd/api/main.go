package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/tipl/employee-monitoring/internal/config"
	appHTTP "github.com/tipl/employee-monitoring/internal/handler/http"
	"github.com/tipl/employee-monitoring/internal/pkg/database"
	"github.com/tipl/employee-monitoring/internal/pkg/jwt"
	"github.com/tipl/employee-monitoring/internal/repository/postgresql"
	attendanceService "github.com/tipl/employee-monitoring/internal/service/attendance"
	auditService "github.com/tipl/employee-monitoring/internal/service/audit"
	authService "github.com/tipl/employee-monitoring/internal/service/auth"
	employeeService "github.com/tipl/employee-monitoring/internal/service/employee"
	managerService "github.com/tipl/employee-monitoring/internal/service/manager"
	projectService "github.com/tipl/employee-monitoring/internal/service/project"
	salaryService "github.com/tipl/employee-monitoring/internal/service/salary"
	taskService "github.com/tipl/employee-monitoring/internal/service/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid APP_TIMEZONE: ", err)
	}
	cutoffHour, cutoffMinute, err := cfg.App.CheckInCutoffParts()
	if err != nil {
		log.Fatal(err)
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	managerRepo := postgresql.NewManagerRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, auditRepo)
	managerSvc := managerService.NewManagerService(db, managerRepo, auditRepo)
	projectSvc := projectService.NewProjectService(db, projectRepo, assignmentRepo, managerRepo, employeeRepo, auditRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo, auditRepo, cutoffHour, cutoffMinute, location)
	taskSvc := taskService.NewTaskService(db, taskRepo, employeeRepo, auditRepo)
	salarySvc := salaryService.NewSalaryService(db, salaryRepo, employeeRepo, auditRepo)
	auditSvc := auditService.NewAuditService(auditRepo)

	router := appHTTP.NewRouter(jwtService, cfg.App.FrontendURL, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Manager:    appHTTP.NewManagerHandler(managerSvc),
		Project:    appHTTP.NewProjectHandler(projectSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Task:       appHTTP.NewTaskHandler(taskSvc),
		Salary:     appHTTP.NewSalaryHandler(salarySvc),
		Audit:      appHTTP.NewAuditHandler(auditSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
