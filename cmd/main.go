package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelAppointmentHandler "github.com/salao-digital/salon-scheduler/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/salao-digital/salon-scheduler/internal/api/handlers/create_appointment"
	createRecurringHandler "github.com/salao-digital/salon-scheduler/internal/api/handlers/create_recurring_appointments"
	getAvailableSlotsHandler "github.com/salao-digital/salon-scheduler/internal/api/handlers/get_available_slots"
	listAppointmentsHandler "github.com/salao-digital/salon-scheduler/internal/api/handlers/list_appointments"
	manageClientsHandler "github.com/salao-digital/salon-scheduler/internal/api/handlers/manage_clients"
	manageServicesHandler "github.com/salao-digital/salon-scheduler/internal/api/handlers/manage_services"
	manageSettingsHandler "github.com/salao-digital/salon-scheduler/internal/api/handlers/manage_settings"
	updateAttendanceHandler "github.com/salao-digital/salon-scheduler/internal/api/handlers/update_attendance"
	"github.com/salao-digital/salon-scheduler/internal/api/middleware"
	"github.com/salao-digital/salon-scheduler/internal/config"
	appointmentRepo "github.com/salao-digital/salon-scheduler/internal/infra/storage/appointment"
	clientRepo "github.com/salao-digital/salon-scheduler/internal/infra/storage/client"
	serviceRepo "github.com/salao-digital/salon-scheduler/internal/infra/storage/service"
	settingsRepo "github.com/salao-digital/salon-scheduler/internal/infra/storage/settings"
	calendarClient "github.com/salao-digital/salon-scheduler/internal/integrations/calendar"
	remindersClient "github.com/salao-digital/salon-scheduler/internal/integrations/reminders"
	appointmentsService "github.com/salao-digital/salon-scheduler/internal/service/appointments"
	clientsService "github.com/salao-digital/salon-scheduler/internal/service/clients"
	servicesService "github.com/salao-digital/salon-scheduler/internal/service/services"
	settingsService "github.com/salao-digital/salon-scheduler/internal/service/settings"
	createAppointmentUC "github.com/salao-digital/salon-scheduler/internal/usecase/create_appointment"
	createRecurringUC "github.com/salao-digital/salon-scheduler/internal/usecase/create_recurring_series"
	getAvailableSlotsUC "github.com/salao-digital/salon-scheduler/internal/usecase/get_available_slots"
	"github.com/salao-digital/salon-scheduler/pkg/logger"
	"github.com/salao-digital/salon-scheduler/pkg/metrics"
	"github.com/salao-digital/salon-scheduler/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting salon-scheduler...")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Integration clients
	calendar := calendarClient.NewClient(
		cfg.Calendar.URL,
		time.Duration(cfg.Calendar.Timeout)*time.Second,
		log,
	)
	reminders := remindersClient.NewClient(
		cfg.Reminders.URL,
		time.Duration(cfg.Reminders.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (calendar=%s, reminders=%s)",
		cfg.Calendar.URL, cfg.Reminders.URL)

	// Repositories
	appointmentRepository := appointmentRepo.NewRepository(db)
	serviceRepository := serviceRepo.NewRepository(db)
	clientRepository := clientRepo.NewRepository(db)
	settingsRepository := settingsRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Services
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, calendar, reminders, log)
	servicesSvc := servicesService.NewService(serviceRepository, log)
	clientsSvc := clientsService.NewService(clientRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)

	// Use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		settingsRepository,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		calendar,
		reminders,
		txMgr,
		log,
	)
	createRecurringUseCase := createRecurringUC.NewUseCase(createAppointmentUseCase, log)

	// Handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	createRecurring := createRecurringHandler.NewHandler(createRecurringUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAttendance := updateAttendanceHandler.NewHandler(appointmentsSvc, log)
	manageServices := manageServicesHandler.NewHandler(servicesSvc, log)
	manageClients := manageClientsHandler.NewHandler(clientsSvc, log)
	manageSettings := manageSettingsHandler.NewHandler(settingsSvc, log)

	// Router
	r := mux.NewRouter()
	r.Use(middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Schedule
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/recurring", createRecurring.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", cancelAppointment.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/appointments/{appointmentId}/attendance", updateAttendance.Handle).Methods(http.MethodPatch)

	// Service catalog
	api.HandleFunc("/services", manageServices.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/services", manageServices.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", manageServices.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", manageServices.HandleUpdate).Methods(http.MethodPut)
	api.HandleFunc("/services/{serviceId}", manageServices.HandleDelete).Methods(http.MethodDelete)

	// Client registry
	api.HandleFunc("/clients", manageClients.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/clients", manageClients.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/clients/{clientId}", manageClients.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/clients/{clientId}", manageClients.HandleUpdate).Methods(http.MethodPut)
	api.HandleFunc("/clients/{clientId}", manageClients.HandleDelete).Methods(http.MethodDelete)

	// Configuration
	api.HandleFunc("/settings", manageSettings.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/settings", manageSettings.HandleUpdate).Methods(http.MethodPut)
	api.HandleFunc("/settings/holidays", manageSettings.HandleAddHoliday).Methods(http.MethodPost)
	api.HandleFunc("/settings/holidays", manageSettings.HandleRemoveHoliday).Methods(http.MethodDelete)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
