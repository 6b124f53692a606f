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

	cancelBookingHandler "github.com/lumiplatform/LUMI-SchedulingService/internal/api/handlers/cancel_booking"
	completeBookingHandler "github.com/lumiplatform/LUMI-SchedulingService/internal/api/handlers/complete_booking"
	confirmBookingHandler "github.com/lumiplatform/LUMI-SchedulingService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/lumiplatform/LUMI-SchedulingService/internal/api/handlers/create_booking"
	createCampaignHandler "github.com/lumiplatform/LUMI-SchedulingService/internal/api/handlers/create_campaign"
	createCouponHandler "github.com/lumiplatform/LUMI-SchedulingService/internal/api/handlers/create_coupon"
	createStaffLeaveHandler "github.com/lumiplatform/LUMI-SchedulingService/internal/api/handlers/create_staff_leave"
	getBookingHandler "github.com/lumiplatform/LUMI-SchedulingService/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/lumiplatform/LUMI-SchedulingService/internal/api/handlers/get_calendar"
	getStaffAvailabilityHandler "github.com/lumiplatform/LUMI-SchedulingService/internal/api/handlers/get_staff_availability"
	listBookingsHandler "github.com/lumiplatform/LUMI-SchedulingService/internal/api/handlers/list_bookings"
	noShowBookingHandler "github.com/lumiplatform/LUMI-SchedulingService/internal/api/handlers/no_show_booking"
	updateBookingHandler "github.com/lumiplatform/LUMI-SchedulingService/internal/api/handlers/update_booking"
	updateBusinessHoursHandler "github.com/lumiplatform/LUMI-SchedulingService/internal/api/handlers/update_business_hours"
	upsertStaffScheduleHandler "github.com/lumiplatform/LUMI-SchedulingService/internal/api/handlers/upsert_staff_schedule"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/api/middleware"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/config"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/infra/events"
	bookingRepo "github.com/lumiplatform/LUMI-SchedulingService/internal/infra/storage/booking"
	promoRepo "github.com/lumiplatform/LUMI-SchedulingService/internal/infra/storage/promo"
	staffRepo "github.com/lumiplatform/LUMI-SchedulingService/internal/infra/storage/staff"
	tenantConfigRepo "github.com/lumiplatform/LUMI-SchedulingService/internal/infra/storage/tenantconfig"
	directoryServiceClient "github.com/lumiplatform/LUMI-SchedulingService/internal/integrations/directoryservice"
	availabilityService "github.com/lumiplatform/LUMI-SchedulingService/internal/service/availability"
	bookingsService "github.com/lumiplatform/LUMI-SchedulingService/internal/service/bookings"
	promotionsService "github.com/lumiplatform/LUMI-SchedulingService/internal/service/promotions"
	scheduleService "github.com/lumiplatform/LUMI-SchedulingService/internal/service/schedule"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/service/scheduling"
	tenantConfigService "github.com/lumiplatform/LUMI-SchedulingService/internal/service/tenantconfig"
	confirmBookingUC "github.com/lumiplatform/LUMI-SchedulingService/internal/usecase/confirm_booking"
	createBookingUC "github.com/lumiplatform/LUMI-SchedulingService/internal/usecase/create_booking"
	updateBookingUC "github.com/lumiplatform/LUMI-SchedulingService/internal/usecase/update_booking"
	"github.com/lumiplatform/LUMI-SchedulingService/pkg/dbmetrics"
	"github.com/lumiplatform/LUMI-SchedulingService/pkg/logger"
	"github.com/lumiplatform/LUMI-SchedulingService/pkg/metrics"
	"github.com/lumiplatform/LUMI-SchedulingService/pkg/simpletxmanager"
	"github.com/lumiplatform/LUMI-SchedulingService/pkg/txmanager"
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

	log.Info("Starting LUMI-SchedulingService...")
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

	// Инициализируем клиент каталога клиентов и услуг
	directoryClient := directoryServiceClient.NewClient(
		cfg.DirectoryService.URL,
		time.Duration(cfg.DirectoryService.Timeout)*time.Second,
		log,
	)
	log.Info("DirectoryService client initialized (url=%s timeout=%ds)",
		cfg.DirectoryService.URL, cfg.DirectoryService.Timeout)

	// Инициализируем публикатор событий переходов (если включен)
	var eventPublisher bookingsService.EventPublisher
	if cfg.Events.Enabled {
		kafkaPublisher := events.NewPublisher(cfg.Events.Brokers, cfg.Events.Topic, log)
		defer kafkaPublisher.Close()
		eventPublisher = kafkaPublisher
		log.Info("Transition events publisher initialized (topic=%s)", cfg.Events.Topic)
	} else {
		eventPublisher = events.NopPublisher{}
		log.Info("Transition events disabled")
	}

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		staffRepository        *staffRepo.Repository
		tenantConfigRepository *tenantConfigRepo.Repository
		promoRepository        *promoRepo.Repository
		txMgr                  TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		staffRepository = staffRepo.NewRepository(wrappedDB)
		tenantConfigRepository = tenantConfigRepo.NewRepository(wrappedDB)
		promoRepository = promoRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		staffRepository = staffRepo.NewRepository(db)
		tenantConfigRepository = tenantConfigRepo.NewRepository(db)
		promoRepository = promoRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(staffRepository, log)
	conflictChecker := scheduling.NewConflictChecker(bookingRepository, log)
	autoAssigner := scheduling.NewAutoAssigner(staffRepository, availabilitySvc, conflictChecker, log)
	bookingSvc := bookingsService.NewService(bookingRepository, eventPublisher, log)
	scheduleSvc := scheduleService.NewService(staffRepository, log)
	tenantConfigSvc := tenantConfigService.NewService(tenantConfigRepository, log)
	promotionsSvc := promotionsService.NewService(promoRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		staffRepository,
		directoryClient,
		log,
	)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		bookingRepository,
		staffRepository,
		directoryClient,
		conflictChecker,
		autoAssigner,
		txMgr,
		eventPublisher,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		staffRepository,
		conflictChecker,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	completeBooking := completeBookingHandler.NewHandler(bookingSvc, log)
	noShowBooking := noShowBookingHandler.NewHandler(bookingSvc, log)
	getCalendar := getCalendarHandler.NewHandler(bookingSvc, log)
	getStaffAvailability := getStaffAvailabilityHandler.NewHandler(availabilitySvc, log)
	upsertStaffSchedule := upsertStaffScheduleHandler.NewHandler(scheduleSvc, log)
	createStaffLeave := createStaffLeaveHandler.NewHandler(scheduleSvc, log)
	updateBusinessHours := updateBusinessHoursHandler.NewHandler(tenantConfigSvc, log)
	createCoupon := createCouponHandler.NewHandler(promotionsSvc, log)
	createCampaign := createCampaignHandler.NewHandler(promotionsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Сквозной ID запроса на всех маршрутах
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Все бизнес-маршруты требуют X-Tenant-ID header
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.TenantAuth(log))

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/complete", completeBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/no-show", noShowBooking.Handle).Methods(http.MethodPost)

	// --- Календарь ---
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// --- Мастера: доступность, расписания, отпуска ---
	api.HandleFunc("/staff/{staffId}/availability", getStaffAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/staff/{staffId}/schedule", upsertStaffSchedule.Handle).Methods(http.MethodPut)
	api.HandleFunc("/staff/{staffId}/leave", createStaffLeave.Handle).Methods(http.MethodPost)

	// --- Часы работы арендатора ---
	api.HandleFunc("/business-hours", updateBusinessHours.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/business-hours", updateBusinessHours.HandleUpdate).Methods(http.MethodPut)

	// --- Промо-акции ---
	api.HandleFunc("/coupons", createCoupon.Handle).Methods(http.MethodPost)
	api.HandleFunc("/campaigns", createCampaign.Handle).Methods(http.MethodPost)

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
