package main

import (
	"fmt"
	"net/http"

	"github.com/salarium/salarium-backend-go/internal/config"
	appHTTP "github.com/salarium/salarium-backend-go/internal/handler/http"
	"github.com/salarium/salarium-backend-go/internal/pkg/database"
	"github.com/salarium/salarium-backend-go/internal/pkg/jwt"
	"github.com/salarium/salarium-backend-go/internal/repository/postgresql"
	personService "github.com/salarium/salarium-backend-go/internal/service/person"
	salaryService "github.com/salarium/salarium-backend-go/internal/service/salary"
	salaryFieldService "github.com/salarium/salarium-backend-go/internal/service/salaryfield"
	statsService "github.com/salarium/salarium-backend-go/internal/service/stats"
	templateService "github.com/salarium/salarium-backend-go/internal/service/template"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	if err := database.RunMigrations(dsn); err != nil {
		fmt.Println("Error running migrations:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	personRepo := postgresql.NewPersonRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	fieldRepo := postgresql.NewSalaryFieldRepository(db)
	templateRepo := postgresql.NewTemplateRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)

	personSvc := personService.NewPersonService(personRepo)
	salarySvc := salaryService.NewSalaryService(salaryRepo, personRepo)
	fieldSvc := salaryFieldService.NewSalaryFieldService(fieldRepo)
	templateSvc := templateService.NewTemplateService(templateRepo, personRepo)
	statsSvc := statsService.NewStatsService(personRepo, salaryRepo)

	router := appHTTP.NewRouter(jwtService, cfg.App.Env, appHTTP.Handlers{
		Person:      appHTTP.NewPersonHandler(personSvc),
		Salary:      appHTTP.NewSalaryHandler(salarySvc),
		SalaryField: appHTTP.NewSalaryFieldHandler(fieldSvc),
		Template:    appHTTP.NewTemplateHandler(templateSvc),
		Stats:       appHTTP.NewStatsHandler(statsSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
