package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	"github.com/SulimanFURC/BE-HMS/internal/config"
	"github.com/SulimanFURC/BE-HMS/internal/handler"
	"github.com/SulimanFURC/BE-HMS/internal/integrations/cloudinary"
	"github.com/SulimanFURC/BE-HMS/internal/middleware"
	"github.com/SulimanFURC/BE-HMS/internal/repository"
	"github.com/SulimanFURC/BE-HMS/internal/service"
	"github.com/SulimanFURC/BE-HMS/internal/utils/email"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load .env when present; real deployments inject the environment
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	uploader := cloudinary.NewClient(cfg, logger)
	mailer := email.NewSender(cfg, logger)
	svc := service.NewService(repo, logger, cfg, uploader, mailer)
	h := handler.NewHandler(svc, logger)

	// Monthly dues reminder job
	c := cron.New()
	if _, err := c.AddFunc(cfg.ReminderSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if _, err := svc.RunDuesReminders(ctx); err != nil {
			logger.Errorf("Dues reminder run failed: %v", err)
		}
	}); err != nil {
		logger.Fatalf("Failed to schedule reminder job: %v", err)
	}
	c.Start()
	defer c.Stop()

	// Setup router
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(logger))

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","message":"Hostel Management Backend is running"}`))
	}).Methods("GET")

	// Public routes
	r.HandleFunc("/api/users/register", h.Register).Methods("POST")
	r.HandleFunc("/api/users/login", h.Login).Methods("POST")
	r.HandleFunc("/api/users/refresh-token", h.Refresh).Methods("POST")

	// Protected routes
	auth := r.PathPrefix("/api").Subrouter()
	auth.Use(middleware.AuthMiddleware(cfg))

	auth.HandleFunc("/users/current", h.CurrentUser).Methods("GET")

	auth.HandleFunc("/students/getAllStudents", h.GetStudents).Methods("GET")
	auth.HandleFunc("/students/getStudentById", h.GetStudent).Methods("POST")
	auth.HandleFunc("/students/createStudent", h.CreateStudent).Methods("POST")
	auth.HandleFunc("/students/updateStudent", h.UpdateStudent).Methods("PUT")
	auth.HandleFunc("/students/deleteStudent", h.DeleteStudent).Methods("DELETE")

	auth.HandleFunc("/rental/getAllRentals", h.GetAllRentals).Methods("GET")
	auth.HandleFunc("/rental/getRentalById", h.GetRentalByID).Methods("POST")
	auth.HandleFunc("/rental/createRental", h.CreateRental).Methods("POST")
	auth.HandleFunc("/rental/updateRental", h.UpdateRental).Methods("PUT")
	auth.HandleFunc("/rental/deleteRental", h.DeleteRental).Methods("DELETE")
	auth.HandleFunc("/rental/getStudentRentDetails", h.GetStudentRentDetails).Methods("POST")
	auth.HandleFunc("/rental/invoice", h.GenerateInvoice).Methods("POST")
	auth.HandleFunc("/rental/invoice/xml", h.GenerateInvoiceXML).Methods("POST")

	auth.HandleFunc("/expenses/getAllExpenses", h.GetExpenses).Methods("GET")
	auth.HandleFunc("/expenses/getExpenseById", h.GetExpense).Methods("POST")
	auth.HandleFunc("/expenses/createExpense", h.CreateExpense).Methods("POST")
	auth.HandleFunc("/expenses/updateExpense", h.UpdateExpense).Methods("PUT")
	auth.HandleFunc("/expenses/deleteExpense", h.DeleteExpense).Methods("DELETE")
	auth.HandleFunc("/expenses/expenseByDateRange", h.ExpensesByDateRange).Methods("POST")

	auth.HandleFunc("/room/getAllRooms", h.GetRooms).Methods("GET")
	auth.HandleFunc("/room/createRoom", h.CreateRoom).Methods("POST")
	auth.HandleFunc("/room/updateRoom", h.UpdateRoom).Methods("PUT")
	auth.HandleFunc("/room/deleteRoom", h.DeleteRoom).Methods("DELETE")

	auth.HandleFunc("/dashboard", h.GetDashboard).Methods("GET")
	auth.HandleFunc("/dashboard/chart", h.GetDashboardChart).Methods("GET")

	// Start server
	addr := ":" + cfg.Port
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
