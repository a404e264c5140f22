package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ANDREYDEN/acacio-sub000/internal/config"
	appHTTP "github.com/ANDREYDEN/acacio-sub000/internal/handler/http"
	"github.com/ANDREYDEN/acacio-sub000/internal/pkg/database"
	"github.com/ANDREYDEN/acacio-sub000/internal/pkg/jwt"
	"github.com/ANDREYDEN/acacio-sub000/internal/repository/postgresql"
	bonusService "github.com/ANDREYDEN/acacio-sub000/internal/service/bonus"
	payrollService "github.com/ANDREYDEN/acacio-sub000/internal/service/payroll"
	shiftService "github.com/ANDREYDEN/acacio-sub000/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	bonusRepo := postgresql.NewBonusRepository(db)
	salesRepo := postgresql.NewSalesRepository(db)
	deductionRepo := postgresql.NewDeductionRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	commissionCalculator := payrollService.NewCommissionCalculator()
	deductionAggregator := payrollService.NewDeductionAggregator()
	payrollSvc := payrollService.NewPayrollService(
		employeeRepo,
		shiftRepo,
		bonusRepo,
		salesRepo,
		deductionRepo,
		commissionCalculator,
		deductionAggregator,
	)
	shiftSvc := shiftService.NewShiftService(shiftRepo, employeeRepo)
	bonusSvc := bonusService.NewBonusService(bonusRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, cfg.Auth.DashboardAPIKey)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeRepo)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	bonusHandler := appHTTP.NewBonusHandler(bonusSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		employeeHandler,
		payrollHandler,
		shiftHandler,
		bonusHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
