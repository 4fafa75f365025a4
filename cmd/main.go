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

	cancelBookingHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/cancel_booking"
	computeQuoteHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/compute_quote"
	createBookingHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/create_booking"
	createRuleHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/create_rule"
	deleteRuleHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/delete_rule"
	detectConflictsHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/detect_conflicts"
	getBookingHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/get_booking"
	getVenueBookingsHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/get_venue_bookings"
	listRulesHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/list_rules"
	listSpacesHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/list_spaces"
	updateBookingStatusHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-VenueService/internal/api/middleware"
	"github.com/m04kA/SMC-VenueService/internal/config"
	bookingRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/booking"
	ruleRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/rule"
	venueRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/venue"
	customerServiceClient "github.com/m04kA/SMC-VenueService/internal/integrations/customerservice"
	bookingsService "github.com/m04kA/SMC-VenueService/internal/service/bookings"
	rulesService "github.com/m04kA/SMC-VenueService/internal/service/rules"
	venuesService "github.com/m04kA/SMC-VenueService/internal/service/venues"
	computeQuoteUC "github.com/m04kA/SMC-VenueService/internal/usecase/compute_quote"
	createBookingUC "github.com/m04kA/SMC-VenueService/internal/usecase/create_booking"
	detectConflictsUC "github.com/m04kA/SMC-VenueService/internal/usecase/detect_conflicts"
	"github.com/m04kA/SMC-VenueService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueService/pkg/logger"
	"github.com/m04kA/SMC-VenueService/pkg/metrics"
	"github.com/m04kA/SMC-VenueService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-VenueService/pkg/txmanager"
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

	log.Info("Starting SMC-VenueService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем интеграционных клиентов
	customerClient := customerServiceClient.NewClient(
		cfg.CustomerService.URL,
		time.Duration(cfg.CustomerService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (CustomerService=%s timeout=%ds)",
		cfg.CustomerService.URL, cfg.CustomerService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		ruleRepository    *ruleRepo.Repository
		venueRepository   *venueRepo.Repository
		txMgr             createBookingUC.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		ruleRepository = ruleRepo.NewRepository(wrappedDB)
		venueRepository = venueRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		ruleRepository = ruleRepo.NewRepository(db)
		venueRepository = venueRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		venueRepository,
		log,
	)
	ruleSvc := rulesService.NewService(
		ruleRepository,
		log,
	)
	venueSvc := venuesService.NewService(
		venueRepository,
		log,
	)

	// Инициализируем use cases
	computeQuoteUseCase := computeQuoteUC.NewUseCase(
		ruleRepository,
		log,
	)
	detectConflictsUseCase := detectConflictsUC.NewUseCase(
		bookingRepository,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		ruleRepository,
		venueRepository,
		customerClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	computeQuote := computeQuoteHandler.NewHandler(computeQuoteUseCase, log)
	detectConflicts := detectConflictsHandler.NewHandler(detectConflictsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getVenueBookings := getVenueBookingsHandler.NewHandler(bookingSvc, log)
	listRules := listRulesHandler.NewHandler(ruleSvc, log)
	listSpaces := listSpacesHandler.NewHandler(venueSvc, log)
	createRule := createRuleHandler.NewHandler(ruleSvc, log)
	deleteRule := deleteRuleHandler.NewHandler(ruleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Расчет стоимости по выбранным налогам и сборам
	api.HandleFunc("/quotes", computeQuote.Handle).Methods(http.MethodPost)

	// Каталог правил ценообразования
	api.HandleFunc("/rules", listRules.Handle).Methods(http.MethodGet)

	// Залы площадки
	api.HandleFunc("/venues/{venueId}/spaces", listSpaces.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Проверка конфликтов перед подтверждением бронирования
	protected.HandleFunc("/bookings/conflicts", detectConflicts.Handle).Methods(http.MethodPost)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Обновление статуса бронирования (для менеджеров)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Управление площадкой (для менеджеров) ---
	// Список бронирований площадки
	protected.HandleFunc("/venues/{venueId}/bookings", getVenueBookings.Handle).Methods(http.MethodGet)

	// --- Каталог правил ---
	// Создание и удаление правил ценообразования
	protected.HandleFunc("/rules", createRule.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/rules/{ruleId}", deleteRule.Handle).Methods(http.MethodDelete)

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
