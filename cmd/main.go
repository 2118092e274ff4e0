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

	checkAvailabilityHandler "github.com/campusbook/CB-ReservationService/internal/api/handlers/check_availability"
	createReservationHandler "github.com/campusbook/CB-ReservationService/internal/api/handlers/create_reservation"
	createSpaceHandler "github.com/campusbook/CB-ReservationService/internal/api/handlers/create_space"
	deleteReservationHandler "github.com/campusbook/CB-ReservationService/internal/api/handlers/delete_reservation"
	deleteSpaceHandler "github.com/campusbook/CB-ReservationService/internal/api/handlers/delete_space"
	getReservationHandler "github.com/campusbook/CB-ReservationService/internal/api/handlers/get_reservation"
	getSpaceHandler "github.com/campusbook/CB-ReservationService/internal/api/handlers/get_space"
	getStatisticsHandler "github.com/campusbook/CB-ReservationService/internal/api/handlers/get_statistics"
	listNotificationsHandler "github.com/campusbook/CB-ReservationService/internal/api/handlers/list_notifications"
	listReservationsHandler "github.com/campusbook/CB-ReservationService/internal/api/handlers/list_reservations"
	listSpacesHandler "github.com/campusbook/CB-ReservationService/internal/api/handlers/list_spaces"
	markAllNotificationsReadHandler "github.com/campusbook/CB-ReservationService/internal/api/handlers/mark_all_notifications_read"
	markNotificationReadHandler "github.com/campusbook/CB-ReservationService/internal/api/handlers/mark_notification_read"
	setSpaceActiveHandler "github.com/campusbook/CB-ReservationService/internal/api/handlers/set_space_active"
	transitionReservationHandler "github.com/campusbook/CB-ReservationService/internal/api/handlers/transition_reservation"
	updateReservationHandler "github.com/campusbook/CB-ReservationService/internal/api/handlers/update_reservation"
	updateSpaceHandler "github.com/campusbook/CB-ReservationService/internal/api/handlers/update_space"
	"github.com/campusbook/CB-ReservationService/internal/api/middleware"
	"github.com/campusbook/CB-ReservationService/internal/config"
	notificationRepo "github.com/campusbook/CB-ReservationService/internal/infra/storage/notification"
	reservationRepo "github.com/campusbook/CB-ReservationService/internal/infra/storage/reservation"
	spaceRepo "github.com/campusbook/CB-ReservationService/internal/infra/storage/space"
	userRepo "github.com/campusbook/CB-ReservationService/internal/infra/storage/user"
	notificationsService "github.com/campusbook/CB-ReservationService/internal/service/notifications"
	reportsService "github.com/campusbook/CB-ReservationService/internal/service/reports"
	reservationsService "github.com/campusbook/CB-ReservationService/internal/service/reservations"
	spacesService "github.com/campusbook/CB-ReservationService/internal/service/spaces"
	checkAvailabilityUC "github.com/campusbook/CB-ReservationService/internal/usecase/check_availability"
	createReservationUC "github.com/campusbook/CB-ReservationService/internal/usecase/create_reservation"
	updateReservationUC "github.com/campusbook/CB-ReservationService/internal/usecase/update_reservation"
	"github.com/campusbook/CB-ReservationService/pkg/dbmetrics"
	"github.com/campusbook/CB-ReservationService/pkg/logger"
	"github.com/campusbook/CB-ReservationService/pkg/metrics"
	"github.com/campusbook/CB-ReservationService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting CB-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	operatingMinutes, err := cfg.Reports.OperatingWindowMinutes()
	if err != nil {
		log.Fatal("Invalid reports config: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Оборачиваем пул: с метриками или без
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.NewDB(db)
	}

	// Инициализируем репозитории
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	spaceRepository := spaceRepo.NewRepository(wrappedDB)
	notificationRepository := notificationRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)

	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	notificationSvc := notificationsService.NewService(notificationRepository, userRepository, log)
	spaceSvc := spacesService.NewService(spaceRepository, log)
	reservationSvc := reservationsService.NewService(reservationRepository, spaceRepository, notificationSvc, log)
	reportSvc := reportsService.NewService(reservationRepository, spaceRepository, userRepository, operatingMinutes, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		spaceRepository,
		notificationSvc,
		txMgr,
		log,
	)
	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationRepository,
		spaceRepository,
		txMgr,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		reservationRepository,
		spaceRepository,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	transitionReservation := transitionReservationHandler.NewHandler(reservationSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationSvc, log)
	createSpace := createSpaceHandler.NewHandler(spaceSvc, log)
	getSpace := getSpaceHandler.NewHandler(spaceSvc, log)
	listSpaces := listSpacesHandler.NewHandler(spaceSvc, log)
	updateSpace := updateSpaceHandler.NewHandler(spaceSvc, log)
	setSpaceActive := setSpaceActiveHandler.NewHandler(spaceSvc, log)
	deleteSpace := deleteSpaceHandler.NewHandler(spaceSvc, log)
	listNotifications := listNotificationsHandler.NewHandler(notificationSvc, log)
	markNotificationRead := markNotificationReadHandler.NewHandler(notificationSvc, log)
	markAllNotificationsRead := markAllNotificationsReadHandler.NewHandler(notificationSvc, log)
	getStatistics := getStatisticsHandler.NewHandler(reportSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Все маршруты требуют идентификации через X-User-ID / X-User-Role
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Помещения ---
	protected.HandleFunc("/spaces", createSpace.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/spaces", listSpaces.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/spaces/{spaceId}", getSpace.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/spaces/{spaceId}", updateSpace.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/spaces/{spaceId}", deleteSpace.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/spaces/{spaceId}/active", setSpaceActive.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/spaces/{spaceId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/reservations/{reservationId}/status", transitionReservation.Handle).Methods(http.MethodPatch)

	// --- Уведомления ---
	protected.HandleFunc("/notifications", listNotifications.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/read-all", markAllNotificationsRead.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/notifications/{notificationId}/read", markNotificationRead.Handle).Methods(http.MethodPatch)

	// --- Отчеты ---
	protected.HandleFunc("/reports/statistics", getStatistics.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
