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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminTestdataHandler "github.com/qnovavr/QNOVA-BookingService/internal/api/handlers/admin_testdata"
	cancelBookingHandler "github.com/qnovavr/QNOVA-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/qnovavr/QNOVA-BookingService/internal/api/handlers/create_booking"
	createContactMessageHandler "github.com/qnovavr/QNOVA-BookingService/internal/api/handlers/create_contact_message"
	createPaymentSessionHandler "github.com/qnovavr/QNOVA-BookingService/internal/api/handlers/create_payment_session"
	getAvailabilityHandler "github.com/qnovavr/QNOVA-BookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/qnovavr/QNOVA-BookingService/internal/api/handlers/get_booking"
	getPaymentStatusHandler "github.com/qnovavr/QNOVA-BookingService/internal/api/handlers/get_payment_status"
	listBookingsHandler "github.com/qnovavr/QNOVA-BookingService/internal/api/handlers/list_bookings"
	listContactMessagesHandler "github.com/qnovavr/QNOVA-BookingService/internal/api/handlers/list_contact_messages"
	listGamesHandler "github.com/qnovavr/QNOVA-BookingService/internal/api/handlers/list_games"
	"github.com/qnovavr/QNOVA-BookingService/internal/api/middleware"
	"github.com/qnovavr/QNOVA-BookingService/internal/config"
	"github.com/qnovavr/QNOVA-BookingService/internal/domain"
	bookingRepo "github.com/qnovavr/QNOVA-BookingService/internal/infra/storage/booking"
	contactRepo "github.com/qnovavr/QNOVA-BookingService/internal/infra/storage/contact"
	gameRepo "github.com/qnovavr/QNOVA-BookingService/internal/infra/storage/game"
	slotRepo "github.com/qnovavr/QNOVA-BookingService/internal/infra/storage/slot"
	"github.com/qnovavr/QNOVA-BookingService/internal/integrations/notifier"
	paymentsClient "github.com/qnovavr/QNOVA-BookingService/internal/integrations/payments"
	bookingsService "github.com/qnovavr/QNOVA-BookingService/internal/service/bookings"
	contactService "github.com/qnovavr/QNOVA-BookingService/internal/service/contact"
	gamesService "github.com/qnovavr/QNOVA-BookingService/internal/service/games"
	paymentsService "github.com/qnovavr/QNOVA-BookingService/internal/service/payments"
	createBookingUC "github.com/qnovavr/QNOVA-BookingService/internal/usecase/create_booking"
	createPaymentSessionUC "github.com/qnovavr/QNOVA-BookingService/internal/usecase/create_payment_session"
	getAvailabilityUC "github.com/qnovavr/QNOVA-BookingService/internal/usecase/get_availability"
	"github.com/qnovavr/QNOVA-BookingService/pkg/logger"
	"github.com/qnovavr/QNOVA-BookingService/pkg/metrics"
	"github.com/qnovavr/QNOVA-BookingService/pkg/txmanager"
)

func main() {
	// .env опционален: в production секреты приходят из окружения
	_ = godotenv.Load()

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

	log.Info("Starting QNOVA-BookingService...")

	// Метрики регистрируются всегда; флаг управляет только HTTP endpoint
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)
	if cfg.Metrics.Enabled {
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
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
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории
	slotRepository := slotRepo.NewRepository(db)
	bookingRepository := bookingRepo.NewRepository(db)
	gameRepository := gameRepo.NewRepository(db)
	contactRepository := contactRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Заливаем стартовый каталог игр (идемпотентно)
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := gameRepository.Seed(seedCtx, domain.SampleGames); err != nil {
		seedCancel()
		log.Fatal("Failed to seed games catalog: %v", err)
	}
	seedCancel()
	log.Info("Games catalog seeded (%d entries)", len(domain.SampleGames))

	// Инициализируем интеграции
	notify := notifier.New(log)
	stripeClient := paymentsClient.NewClient(cfg.Stripe.APIKey, cfg.Stripe.SuccessURL, cfg.Stripe.CancelURL, log)
	log.Info("Payments client initialized")

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, slotRepository, txMgr, notify, log)
	gamesSvc := gamesService.NewService(gameRepository, log)
	contactSvc := contactService.NewService(contactRepository, log)
	paymentsSvc := paymentsService.NewService(stripeClient, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		slotRepository,
		bookingRepository,
		txMgr,
		notify,
		metricsCollector,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(slotRepository, log)
	createPaymentSessionUseCase := createPaymentSessionUC.NewUseCase(stripeClient, log)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	listGames := listGamesHandler.NewHandler(gamesSvc, log)
	createContactMessage := createContactMessageHandler.NewHandler(contactSvc, log)
	listContactMessages := listContactMessagesHandler.NewHandler(contactSvc, log)
	createPaymentSession := createPaymentSessionHandler.NewHandler(createPaymentSessionUseCase, log)
	getPaymentStatus := getPaymentStatusHandler.NewHandler(paymentsSvc, log)
	adminTestdata := adminTestdataHandler.NewHandler(createBookingUseCase, bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	adminOnly := middleware.AdminAuth(cfg.Admin.Token, log)

	// Расписание и бронирования
	api.HandleFunc("/availability/{date}", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.Handle("/bookings", adminOnly(http.HandlerFunc(listBookings.Handle))).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// Каталог игр
	api.HandleFunc("/games", listGames.Handle).Methods(http.MethodGet)

	// Обратная связь (список сообщений доступен только админке)
	api.HandleFunc("/contact", createContactMessage.Handle).Methods(http.MethodPost)
	api.Handle("/contact", adminOnly(http.HandlerFunc(listContactMessages.Handle))).Methods(http.MethodGet)

	// Платежи
	api.HandleFunc("/payments/checkout-session", createPaymentSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/payments/checkout-session/{id}/status", getPaymentStatus.Handle).Methods(http.MethodGet)

	// Админские ручки тестовых данных (закрыты токеном)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(adminOnly)
	admin.HandleFunc("/test-data", adminTestdata.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/test-data", adminTestdata.HandleClear).Methods(http.MethodDelete)

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
