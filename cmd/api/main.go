package main

import (
	"fmt"
	"net/http"

	"github.com/turniapp/turni-backend-go/internal/config"
	appHTTP "github.com/turniapp/turni-backend-go/internal/handler/http"
	"github.com/turniapp/turni-backend-go/internal/pkg/database"
	"github.com/turniapp/turni-backend-go/internal/pkg/holidays"
	"github.com/turniapp/turni-backend-go/internal/repository/postgresql"
	contractService "github.com/turniapp/turni-backend-go/internal/service/contract"
	earningsService "github.com/turniapp/turni-backend-go/internal/service/earnings"
	timesheetService "github.com/turniapp/turni-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	entryRepo := postgresql.NewWorkEntryRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)

	calendar := holidays.NewItalianCalendar()

	timesheetSvc := timesheetService.NewTimesheetService(entryRepo)
	contractSvc := contractService.NewContractService(settingsRepo, db)
	earningsSvc := earningsService.NewEarningsService(calendar, entryRepo, settingsRepo)

	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	contractHandler := appHTTP.NewContractHandler(contractSvc)
	earningsHandler := appHTTP.NewEarningsHandler(earningsSvc)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		cfg.App.CORSOrigin,
		timesheetHandler,
		contractHandler,
		earningsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
