package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(env string, staffHandler StaffHandler, jobHandler JobHandler, catalogHandler CatalogHandler, payrollHandler PayrollHandler, financeHandler FinanceHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "detailing-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/staff", func(r chi.Router) {
			r.Get("/", staffHandler.ListStaff)
			r.Post("/", staffHandler.CreateStaff)
			r.Get("/{staffID}", staffHandler.GetStaff)
			r.Put("/{staffID}", staffHandler.UpdateStaff)
		})

		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", jobHandler.ListJobs)
			r.Post("/", jobHandler.CreateJob)
			r.Get("/{jobID}", jobHandler.GetJob)
			r.Post("/{jobID}/invoice", jobHandler.InvoiceJob)
		})

		r.Route("/services", func(r chi.Router) {
			r.Get("/", catalogHandler.ListServices)
			r.Post("/", catalogHandler.CreateService)
			r.Get("/{serviceID}", catalogHandler.GetService)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", financeHandler.ListTransactions)
			r.Post("/", financeHandler.RecordTransaction)
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Get("/runs", payrollHandler.ListRuns)
			r.Route("/{month}", func(r chi.Router) {
				r.Get("/", payrollHandler.GetMonth)
				r.Post("/finalize", payrollHandler.Finalize)
				r.Get("/deductions", payrollHandler.ListDeductions)
				r.Put("/deductions/{staffID}", payrollHandler.UpsertDeduction)
				r.Get("/payslips/{staffID}", payrollHandler.DownloadPayslip)
			})
		})
	})

	return r
}
