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

	acceptBookingHandler "github.com/venuebook/VB-BookingService/internal/api/handlers/accept_booking"
	cancelBookingHandler "github.com/venuebook/VB-BookingService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/venuebook/VB-BookingService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/venuebook/VB-BookingService/internal/api/handlers/create_booking"
	createVenueHandler "github.com/venuebook/VB-BookingService/internal/api/handlers/create_venue"
	deleteBookingHandler "github.com/venuebook/VB-BookingService/internal/api/handlers/delete_booking"
	deleteVenueHandler "github.com/venuebook/VB-BookingService/internal/api/handlers/delete_venue"
	getCityVenuesHandler "github.com/venuebook/VB-BookingService/internal/api/handlers/get_city_venues"
	getCustomerBookingsHandler "github.com/venuebook/VB-BookingService/internal/api/handlers/get_customer_bookings"
	getOwnerBookingsHandler "github.com/venuebook/VB-BookingService/internal/api/handlers/get_owner_bookings"
	getOwnerVenuesHandler "github.com/venuebook/VB-BookingService/internal/api/handlers/get_owner_venues"
	getProfileHandler "github.com/venuebook/VB-BookingService/internal/api/handlers/get_profile"
	getVenueHandler "github.com/venuebook/VB-BookingService/internal/api/handlers/get_venue"
	loginHandler "github.com/venuebook/VB-BookingService/internal/api/handlers/login"
	registerHandler "github.com/venuebook/VB-BookingService/internal/api/handlers/register"
	"github.com/venuebook/VB-BookingService/internal/api/middleware"
	"github.com/venuebook/VB-BookingService/internal/config"
	bookingRepo "github.com/venuebook/VB-BookingService/internal/infra/storage/booking"
	userRepo "github.com/venuebook/VB-BookingService/internal/infra/storage/user"
	venueRepo "github.com/venuebook/VB-BookingService/internal/infra/storage/venue"
	"github.com/venuebook/VB-BookingService/internal/integrations/cloudinary"
	bookingsService "github.com/venuebook/VB-BookingService/internal/service/bookings"
	usersService "github.com/venuebook/VB-BookingService/internal/service/users"
	venuesService "github.com/venuebook/VB-BookingService/internal/service/venues"
	checkAvailabilityUC "github.com/venuebook/VB-BookingService/internal/usecase/check_availability"
	createBookingUC "github.com/venuebook/VB-BookingService/internal/usecase/create_booking"
	createVenueUC "github.com/venuebook/VB-BookingService/internal/usecase/create_venue"
	deleteVenueUC "github.com/venuebook/VB-BookingService/internal/usecase/delete_venue"
	"github.com/venuebook/VB-BookingService/pkg/dbmetrics"
	"github.com/venuebook/VB-BookingService/pkg/logger"
	"github.com/venuebook/VB-BookingService/pkg/metrics"
	"github.com/venuebook/VB-BookingService/pkg/simpletxmanager"
	"github.com/venuebook/VB-BookingService/pkg/tokens"
	"github.com/venuebook/VB-BookingService/pkg/txmanager"
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

	log.Info("Starting VB-BookingService...")
	log.Info("Configuration loaded from config.toml")

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

	// Клиент внешнего хранилища файлов
	assetStore := cloudinary.NewClient(cloudinary.Config{
		CloudName: cfg.Cloudinary.CloudName,
		APIKey:    cfg.Cloudinary.APIKey,
		APISecret: cfg.Cloudinary.APISecret,
		Folder:    cfg.Cloudinary.Folder,
		Timeout:   time.Duration(cfg.Cloudinary.Timeout) * time.Second,
	}, log)
	log.Info("Cloudinary client initialized (cloud=%s, folder=%s)",
		cfg.Cloudinary.CloudName, cfg.Cloudinary.Folder)

	// Менеджер токенов
	tokenManager := tokens.NewManager(cfg.Auth.Secret, time.Duration(cfg.Auth.TokenTTL)*time.Second)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		venueRepository   *venueRepo.Repository
		userRepository    *userRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		venueRepository = venueRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		venueRepository = venueRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, assetStore, log)
	venueSvc := venuesService.NewService(venueRepository, userRepository, log)
	userSvc := usersService.NewService(userRepository, tokenManager, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUsecase(
		bookingRepository,
		venueRepository,
		assetStore,
		txMgr,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUsecase(bookingRepository, log)
	createVenueUseCase := createVenueUC.NewUsecase(venueRepository, assetStore, log)
	deleteVenueUseCase := deleteVenueUC.NewUsecase(
		venueRepository,
		bookingRepository,
		assetStore,
		txMgr,
		log,
	)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	acceptBooking := acceptBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getOwnerBookings := getOwnerBookingsHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	createVenue := createVenueHandler.NewHandler(createVenueUseCase, log)
	getVenue := getVenueHandler.NewHandler(venueSvc, log)
	getCityVenues := getCityVenuesHandler.NewHandler(venueSvc, log)
	getOwnerVenues := getOwnerVenuesHandler.NewHandler(venueSvc, log)
	deleteVenue := deleteVenueHandler.NewHandler(deleteVenueUseCase, log)
	register := registerHandler.NewHandler(userSvc, log)
	login := loginHandler.NewHandler(userSvc, log)
	getProfile := getProfileHandler.NewHandler(userSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Проверка доступности слота
	api.HandleFunc("/venues/{venueId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokenManager))

	protected.HandleFunc("/auth/me", getProfile.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	customerOnly := protected.PathPrefix("").Subrouter()
	customerOnly.Use(middleware.CustomerOnly)
	customerOnly.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	customerOnly.HandleFunc("/bookings/customer", getCustomerBookings.Handle).Methods(http.MethodGet)

	ownerOnly := protected.PathPrefix("").Subrouter()
	ownerOnly.Use(middleware.OwnerOnly)
	ownerOnly.HandleFunc("/bookings/owner", getOwnerBookings.Handle).Methods(http.MethodGet)
	ownerOnly.HandleFunc("/bookings/{bookingId}/accept", acceptBooking.Handle).Methods(http.MethodPatch)

	// Отмена доступна обеим ролям, удаление - любому аутентифицированному
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Площадки ---
	ownerOnly.HandleFunc("/venues", createVenue.Handle).Methods(http.MethodPost)
	ownerOnly.HandleFunc("/venues/owner", getOwnerVenues.Handle).Methods(http.MethodGet)
	ownerOnly.HandleFunc("/venues/{venueId}", deleteVenue.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/venues/city/{city}", getCityVenues.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/venues/{venueId}", getVenue.Handle).Methods(http.MethodGet)

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
