package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-SchedulingService/internal/api"
	cancelAppointmentHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/create_appointment"
	customersHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/customers"
	getAppointmentHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_appointment"
	getAppointmentPaymentHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_appointment_payment"
	getAvailabilityHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_availability"
	listAppointmentsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/list_appointments"
	payAppointmentHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/pay_appointment"
	providersHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/providers"
	servicesHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/services"
	updateAppointmentHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/update_appointment"
	"github.com/m04kA/SMC-SchedulingService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/catalog"
	customerRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/customer"
	paymentRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/payment"
	providerRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/provider"
	appointmentsService "github.com/m04kA/SMC-SchedulingService/internal/service/appointments"
	catalogService "github.com/m04kA/SMC-SchedulingService/internal/service/catalog"
	customersService "github.com/m04kA/SMC-SchedulingService/internal/service/customers"
	providersService "github.com/m04kA/SMC-SchedulingService/internal/service/providers"
	cancelAppointmentUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/cancel_appointment"
	createAppointmentUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_appointment"
	getAvailabilityUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_availability"
	payAppointmentUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/pay_appointment"
	rescheduleAppointmentUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/reschedule_appointment"
	"github.com/m04kA/SMC-SchedulingService/pkg/clock"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/txmanager"
)

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(*configPath)
		},
	}
}

func runServer(configPath string) error {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting SMC-SchedulingService...")
	log.Info("Configuration loaded from %s", configPath)

	loc, err := clock.LoadLocation(cfg.Scheduling.Timezone)
	if err != nil {
		return fmt.Errorf("invalid scheduling timezone %q: %w", cfg.Scheduling.Timezone, err)
	}
	timeProvider := clock.New(loc)
	log.Info("Wall clock location: %s", loc)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// С выключенными метриками обертка работает как обычный *sql.DB
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB, txmanager.WithMaxRetries(cfg.Database.TxMaxRetries))

	// Репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	providerRepository := providerRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	customerRepository := customerRepo.NewRepository(wrappedDB)
	paymentRepository := paymentRepo.NewRepository(wrappedDB)

	// Сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, paymentRepository, log)
	providersSvc := providersService.NewService(
		providerRepository,
		txMgr,
		cfg.Scheduling.DefaultWorkStart,
		cfg.Scheduling.DefaultWorkEnd,
		log,
	)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	customersSvc := customersService.NewService(customerRepository, log)

	// Use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		providerRepository,
		catalogRepository,
		customerRepository,
		txMgr,
		timeProvider,
		metricsCollector,
		log,
	)
	rescheduleAppointmentUseCase := rescheduleAppointmentUC.NewUseCase(
		appointmentRepository,
		providerRepository,
		catalogRepository,
		txMgr,
		timeProvider,
		metricsCollector,
		log,
	)
	cancelAppointmentUseCase := cancelAppointmentUC.NewUseCase(appointmentRepository, txMgr, metricsCollector, log)
	payAppointmentUseCase := payAppointmentUC.NewUseCase(
		appointmentRepository,
		paymentRepository,
		txMgr,
		timeProvider,
		metricsCollector,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(providerRepository, appointmentRepository, log)

	// Handlers
	h := &api.Handlers{
		CreateAppointment:     createAppointmentHandler.NewHandler(createAppointmentUseCase, log),
		ListAppointments:      listAppointmentsHandler.NewHandler(appointmentsSvc, log),
		GetAppointment:        getAppointmentHandler.NewHandler(appointmentsSvc, log),
		UpdateAppointment:     updateAppointmentHandler.NewHandler(rescheduleAppointmentUseCase, log),
		CancelAppointment:     cancelAppointmentHandler.NewHandler(cancelAppointmentUseCase, log),
		GetAppointmentPayment: getAppointmentPaymentHandler.NewHandler(appointmentsSvc, log),
		PayAppointment:        payAppointmentHandler.NewHandler(payAppointmentUseCase, log),
		GetAvailability:       getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log),
		Providers:             providersHandler.NewHandler(providersSvc, log),
		Services:              servicesHandler.NewHandler(catalogSvc, log),
		Customers:             customersHandler.NewHandler(customersSvc, log),
	}

	if !cfg.Auth.Enabled {
		log.Warn("Bearer token authentication is disabled")
	}

	router := api.NewRouter(h, api.Options{
		Auth: api.AuthOptions{
			Enabled: cfg.Auth.Enabled,
			Secret:  []byte(cfg.Auth.Secret),
			Issuer:  cfg.Auth.Issuer,
		},
		Metrics:     metricsCollector,
		MetricsPath: cfg.Metrics.Path,
		HealthCheck: db.PingContext,
		Logger:      log,
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения или падение сервера
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		log.Info("Received %s, shutting down server...", sig)
	case err := <-serverErr:
		close(stopMetricsCh)
		return fmt.Errorf("server failed: %w", err)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// openDB открывает пул соединений и проверяет доступность базы
func openDB(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}
