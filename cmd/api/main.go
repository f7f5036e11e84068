package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/autodazzle/detailing-backend-go/internal/config"
	"github.com/autodazzle/detailing-backend-go/internal/fixtures"
	appHTTP "github.com/autodazzle/detailing-backend-go/internal/handler/http"
	"github.com/autodazzle/detailing-backend-go/internal/pkg/database"
	"github.com/autodazzle/detailing-backend-go/internal/repository/postgresql"
	catalogService "github.com/autodazzle/detailing-backend-go/internal/service/catalog"
	financeService "github.com/autodazzle/detailing-backend-go/internal/service/finance"
	jobService "github.com/autodazzle/detailing-backend-go/internal/service/job"
	payrollService "github.com/autodazzle/detailing-backend-go/internal/service/payroll"
	"github.com/autodazzle/detailing-backend-go/internal/service/payslip"
	staffService "github.com/autodazzle/detailing-backend-go/internal/service/staff"
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

	ctx := context.Background()
	if err := database.Migrate(ctx, db, cfg.App.MigrationsDir); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	staffRepo := postgresql.NewStaffRepository(db)
	jobRepo := postgresql.NewJobRepository(db)
	catalogRepo := postgresql.NewCatalogRepository(db)
	deductionRepo := postgresql.NewDeductionRepository(db)
	runRepo := postgresql.NewRunRepository(db)
	transactionRepo := postgresql.NewTransactionRepository(db)

	if err := fixtures.SeedCatalog(ctx, catalogRepo); err != nil {
		log.Fatal("Failed to seed catalog: ", err)
	}

	staffSvc := staffService.NewStaffService(staffRepo)
	jobSvc := jobService.NewJobService(jobRepo)
	catalogSvc := catalogService.NewCatalogService(catalogRepo)
	payrollSvc := payrollService.NewPayrollService(staffRepo, jobRepo, catalogRepo, deductionRepo, runRepo)
	payslipSvc := payslip.NewService(runRepo, cfg.App.ShopName, cfg.App.PayslipDir)
	financeSvc := financeService.NewFinanceService(transactionRepo)

	staffHandler := appHTTP.NewStaffHandler(staffSvc)
	jobHandler := appHTTP.NewJobHandler(jobSvc)
	catalogHandler := appHTTP.NewCatalogHandler(catalogSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc, payslipSvc)
	financeHandler := appHTTP.NewFinanceHandler(financeSvc)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		staffHandler,
		jobHandler,
		catalogHandler,
		payrollHandler,
		financeHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
