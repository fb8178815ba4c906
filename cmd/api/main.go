package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/vetanhr/payroll-backend-go/internal/config"
	calendardomain "github.com/vetanhr/payroll-backend-go/internal/domain/calendar"
	payrolldomain "github.com/vetanhr/payroll-backend-go/internal/domain/payroll"
	appHTTP "github.com/vetanhr/payroll-backend-go/internal/handler/http"
	"github.com/vetanhr/payroll-backend-go/internal/pkg/database"
	"github.com/vetanhr/payroll-backend-go/internal/pkg/jwt"
	"github.com/vetanhr/payroll-backend-go/internal/pkg/storage"
	"github.com/vetanhr/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/vetanhr/payroll-backend-go/internal/service/attendance"
	authService "github.com/vetanhr/payroll-backend-go/internal/service/auth"
	calendarService "github.com/vetanhr/payroll-backend-go/internal/service/calendar"
	complianceService "github.com/vetanhr/payroll-backend-go/internal/service/compliance"
	employeeService "github.com/vetanhr/payroll-backend-go/internal/service/employee"
	"github.com/vetanhr/payroll-backend-go/internal/service/file"
	payrollService "github.com/vetanhr/payroll-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	txManager := postgresql.NewTxManager(db)

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	holidayRepo := postgresql.NewOrgHolidayRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	complianceRepo := postgresql.NewComplianceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	calSvc := calendarService.NewCalendarService(calendardomain.NewNationalHolidayProvider())
	holidaySvc := calendarService.NewHolidayService(holidayRepo, calSvc)
	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, holidayRepo, calSvc)
	payrollSvc := payrollService.NewPayrollService(txManager, payrollRepo, employeeRepo, payrolldomain.NewRuleSet())
	complianceSvc := complianceService.NewComplianceService(txManager, complianceRepo, payrollRepo)
	fileSvc := file.NewFileService(fileStorage)

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Calendar:   appHTTP.NewCalendarHandler(holidaySvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Compliance: appHTTP.NewComplianceHandler(complianceSvc),
		Upload:     appHTTP.NewUploadHandler(fileSvc, employeeSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error:", err)
	}
}
