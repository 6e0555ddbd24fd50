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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authHandler "github.com/m04kA/SMC-SwapPortal/internal/api/handlers/auth"
	bookingWizardHandler "github.com/m04kA/SMC-SwapPortal/internal/api/handlers/booking_wizard"
	complaintsHandler "github.com/m04kA/SMC-SwapPortal/internal/api/handlers/complaints"
	inspectionWizardHandler "github.com/m04kA/SMC-SwapPortal/internal/api/handlers/inspection_wizard"
	listingsHandler "github.com/m04kA/SMC-SwapPortal/internal/api/handlers/listings"
	passwordHandler "github.com/m04kA/SMC-SwapPortal/internal/api/handlers/password"
	paymentsHandler "github.com/m04kA/SMC-SwapPortal/internal/api/handlers/payments"
	plansHandler "github.com/m04kA/SMC-SwapPortal/internal/api/handlers/plans"
	restockHandler "github.com/m04kA/SMC-SwapPortal/internal/api/handlers/restock"
	sessionHandler "github.com/m04kA/SMC-SwapPortal/internal/api/handlers/session"
	subscriptionsHandler "github.com/m04kA/SMC-SwapPortal/internal/api/handlers/subscriptions"
	"github.com/m04kA/SMC-SwapPortal/internal/api/middleware"
	"github.com/m04kA/SMC-SwapPortal/internal/config"
	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	wizardRepo "github.com/m04kA/SMC-SwapPortal/internal/infra/storage/wizard"
	"github.com/m04kA/SMC-SwapPortal/internal/integrations/swapapi"
	purgeWizardsJob "github.com/m04kA/SMC-SwapPortal/internal/jobs/purge_wizards"
	"github.com/m04kA/SMC-SwapPortal/internal/service/availability"
	"github.com/m04kA/SMC-SwapPortal/internal/service/session"
	"github.com/m04kA/SMC-SwapPortal/internal/service/wizards"
	authUC "github.com/m04kA/SMC-SwapPortal/internal/usecase/auth"
	bookingWizardUC "github.com/m04kA/SMC-SwapPortal/internal/usecase/booking_wizard"
	complaintsUC "github.com/m04kA/SMC-SwapPortal/internal/usecase/complaints"
	groupRequestsUC "github.com/m04kA/SMC-SwapPortal/internal/usecase/group_requests"
	inspectionWizardUC "github.com/m04kA/SMC-SwapPortal/internal/usecase/inspection_wizard"
	listingsUC "github.com/m04kA/SMC-SwapPortal/internal/usecase/listings"
	managePlansUC "github.com/m04kA/SMC-SwapPortal/internal/usecase/manage_plans"
	passwordRecoveryUC "github.com/m04kA/SMC-SwapPortal/internal/usecase/password_recovery"
	paymentMethodUC "github.com/m04kA/SMC-SwapPortal/internal/usecase/payment_method"
	subscriptionsUC "github.com/m04kA/SMC-SwapPortal/internal/usecase/subscriptions"
	"github.com/m04kA/SMC-SwapPortal/pkg/logger"
	"github.com/m04kA/SMC-SwapPortal/pkg/metrics"
	"github.com/m04kA/SMC-SwapPortal/pkg/txmanager"
)

// wizardStore хранилище сессий визардов с очисткой просроченных записей
type wizardStore interface {
	wizards.Store
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// recoveryLogger адаптер логгера для gorilla/handlers.RecoveryHandler
type recoveryLogger struct {
	log *logger.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.log.Error("Recovered from panic: %s", fmt.Sprint(v...))
}

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

	log.Info("Starting SMC-SwapPortal...")
	log.Info("Configuration loaded from config.toml")

	// Часовой пояс станций: по нему считается "сегодня" в визардах
	stationLoc, err := cfg.Server.Location()
	if err != nil {
		log.Fatal("Invalid timezone: %v", err)
	}
	stationNow := func() time.Time { return time.Now().In(stationLoc) }
	log.Info("Station timezone: %s", stationLoc)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище сессий визардов
	var store wizardStore
	switch cfg.Storage.Driver {
	case "postgres":
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		store = wizardRepo.NewRepository(db, txmanager.NewTransactionManager(db))
	default:
		store = wizardRepo.NewMemoryStore(time.Now)
		log.Info("Wizard sessions are kept in memory")
	}

	// Инициализируем клиента backend
	backend := swapapi.NewClient(
		cfg.Backend.URL,
		time.Duration(cfg.Backend.Timeout)*time.Second,
		log,
		swapapi.WithMetrics(metricsCollector),
		swapapi.WithRateLimitFallback(time.Duration(cfg.Backend.RateLimitFallbackDelay)*time.Second),
	)
	log.Info("Backend client initialized (url=%s, timeout=%ds)", cfg.Backend.URL, cfg.Backend.Timeout)

	// Инициализируем сервисы
	sessionSvc := session.NewService(
		backend,
		session.NewVerifier([]byte(cfg.Auth.JWTSecret), cfg.Auth.Issuer, cfg.Auth.Audience),
		time.Duration(cfg.Backend.SessionCheckTimeout)*time.Second,
		log,
	)

	sessionTTL := time.Duration(cfg.Storage.SessionTTLMinutes) * time.Minute
	bookingSessions := wizards.NewManager[bookingWizardUC.Session](store, domain.WizardKindBooking, sessionTTL, time.Now)
	inspectionSessions := wizards.NewManager[inspectionWizardUC.Session](store, domain.WizardKindInspection, sessionTTL, time.Now)

	groupingStrategy, err := groupRequestsUC.ParseStrategy(cfg.Grouping.Strategy)
	if err != nil {
		log.Fatal("Invalid grouping strategy: %v", err)
	}

	// Инициализируем use cases
	authUseCase := authUC.NewUseCase(backend, sessionSvc, log)
	passwordRecoveryUseCase := passwordRecoveryUC.NewUseCase(
		backend,
		time.Duration(cfg.Recovery.ResendCooldownSeconds)*time.Second,
		log,
	)
	// Незавершённое подтверждение можно повторить не раньше, чем истечёт запрос в backend
	confirmTimeout := 2 * time.Duration(cfg.Backend.Timeout) * time.Second
	bookingWizardUseCase := bookingWizardUC.NewUseCase(
		backend,
		availability.NewServerSource(backend),
		bookingSessions,
		metricsCollector,
		log,
	).
		WithTimeProvider(&bookingWizardUC.RealTimeProvider{Location: stationLoc}).
		WithConfirmTimeout(confirmTimeout)
	inspectionWizardUseCase := inspectionWizardUC.NewUseCase(
		backend,
		availability.NewInspectionSource(stationNow),
		inspectionSessions,
		metricsCollector,
		log,
	).
		WithTimeProvider(&inspectionWizardUC.RealTimeProvider{Location: stationLoc}).
		WithConfirmTimeout(confirmTimeout)
	groupRequestsUseCase := groupRequestsUC.NewUseCase(
		backend,
		groupRequestsUC.Config{
			BatteryRequestWindow: time.Duration(cfg.Grouping.BatteryRequestWindowMs) * time.Millisecond,
			StockRequestWindow:   time.Duration(cfg.Grouping.StockRequestWindowMs) * time.Millisecond,
			Strategy:             groupingStrategy,
		},
		metricsCollector,
		log,
	)
	listingsUseCase := listingsUC.NewUseCase(
		backend,
		listingsUC.PageSizes{
			Stations:   cfg.Pagination.Stations,
			Payments:   cfg.Pagination.Payments,
			Complaints: cfg.Pagination.Complaints,
			Customers:  cfg.Pagination.Customers,
			Staff:      cfg.Pagination.Staff,
			Plans:      cfg.Pagination.Plans,
		},
		log,
	)
	paymentMethodUseCase := paymentMethodUC.NewUseCase(backend, log)
	subscriptionsUseCase := subscriptionsUC.NewUseCase(backend, log)
	managePlansUseCase := managePlansUC.NewUseCase(backend, log)
	complaintsUseCase := complaintsUC.NewUseCase(backend, log)

	// Инициализируем handlers
	sessionH := sessionHandler.NewHandler(sessionSvc, log)
	authH := authHandler.NewHandler(authUseCase, cfg.Server.SecureCookie, log)
	passwordH := passwordHandler.NewHandler(passwordRecoveryUseCase, log)
	bookingWizardH := bookingWizardHandler.NewHandler(bookingWizardUseCase, log)
	inspectionWizardH := inspectionWizardHandler.NewHandler(inspectionWizardUseCase, log)
	restockH := restockHandler.NewHandler(groupRequestsUseCase, log)
	listingsH := listingsHandler.NewHandler(listingsUseCase, log)
	paymentsH := paymentsHandler.NewHandler(paymentMethodUseCase, log)
	subscriptionsH := subscriptionsHandler.NewHandler(subscriptionsUseCase, log)
	plansH := plansHandler.NewHandler(managePlansUseCase, log)
	complaintsH := complaintsHandler.NewHandler(complaintsUseCase, log)

	// Фоновая очистка просроченных сессий визардов
	purgeJob, err := purgeWizardsJob.NewJob(store, cfg.Storage.CleanupSchedule, log)
	if err != nil {
		log.Fatal("Failed to schedule wizard cleanup: %v", err)
	}
	purgeJob.Start()

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix; сессия определяется для каждого запроса
	api := r.PathPrefix("/api/v1/portal").Subrouter()
	api.Use(middleware.Auth(sessionSvc))

	// ============================================================
	// PUBLIC ROUTES (гость или авторизованный пользователь)
	// ============================================================

	api.HandleFunc("/session", sessionH.Handle).Methods(http.MethodGet)

	api.HandleFunc("/auth/login", authH.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", authH.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", authH.Logout).Methods(http.MethodPost)

	api.HandleFunc("/auth/password/forgot", passwordH.Forgot).Methods(http.MethodPost)
	api.HandleFunc("/auth/password/verify", passwordH.Verify).Methods(http.MethodPost)
	api.HandleFunc("/auth/password/reset", passwordH.Reset).Methods(http.MethodPost)

	api.HandleFunc("/stations", listingsH.Stations).Methods(http.MethodGet)
	api.HandleFunc("/plans", listingsH.Plans).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют вход)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.RequireAuth)

	// --- Визард бронирования замены ---
	protected.HandleFunc("/booking-wizards", bookingWizardH.Open).Methods(http.MethodPost)
	protected.HandleFunc("/booking-wizards/{id}", bookingWizardH.Get).Methods(http.MethodGet)
	protected.HandleFunc("/booking-wizards/{id}", bookingWizardH.Close).Methods(http.MethodDelete)
	protected.HandleFunc("/booking-wizards/{id}/vehicle", bookingWizardH.SelectVehicle).Methods(http.MethodPut)
	protected.HandleFunc("/booking-wizards/{id}/date", bookingWizardH.SelectDate).Methods(http.MethodPut)
	protected.HandleFunc("/booking-wizards/{id}/slot", bookingWizardH.SelectSlot).Methods(http.MethodPut)
	protected.HandleFunc("/booking-wizards/{id}/payment-method", bookingWizardH.SelectPaymentMethod).Methods(http.MethodPut)
	protected.HandleFunc("/booking-wizards/{id}/next", bookingWizardH.Next).Methods(http.MethodPost)
	protected.HandleFunc("/booking-wizards/{id}/back", bookingWizardH.Back).Methods(http.MethodPost)
	protected.HandleFunc("/booking-wizards/{id}/confirm", bookingWizardH.Confirm).Methods(http.MethodPost)
	protected.HandleFunc("/booking-wizards/{id}/qr", bookingWizardH.QR).Methods(http.MethodGet)

	// --- Визард записи на осмотр ---
	protected.HandleFunc("/inspection-wizards", inspectionWizardH.Open).Methods(http.MethodPost)
	protected.HandleFunc("/inspection-wizards/{id}", inspectionWizardH.Get).Methods(http.MethodGet)
	protected.HandleFunc("/inspection-wizards/{id}", inspectionWizardH.Close).Methods(http.MethodDelete)
	protected.HandleFunc("/inspection-wizards/{id}/station", inspectionWizardH.SelectStation).Methods(http.MethodPut)
	protected.HandleFunc("/inspection-wizards/{id}/date", inspectionWizardH.SelectDate).Methods(http.MethodPut)
	protected.HandleFunc("/inspection-wizards/{id}/slot", inspectionWizardH.SelectSlot).Methods(http.MethodPut)
	protected.HandleFunc("/inspection-wizards/{id}/next", inspectionWizardH.Next).Methods(http.MethodPost)
	protected.HandleFunc("/inspection-wizards/{id}/back", inspectionWizardH.Back).Methods(http.MethodPost)
	protected.HandleFunc("/inspection-wizards/{id}/confirm", inspectionWizardH.Confirm).Methods(http.MethodPost)

	// --- Платежи, подписки, жалобы ---
	protected.HandleFunc("/payments", listingsH.Payments).Methods(http.MethodGet)
	protected.HandleFunc("/payments/{id}/select-cash", paymentsH.SelectCash).Methods(http.MethodPost)
	protected.HandleFunc("/payments/{id}/regenerate-vnpay-url", paymentsH.RegenerateVNPayURL).Methods(http.MethodPost)

	protected.HandleFunc("/subscriptions", subscriptionsH.Mine).Methods(http.MethodGet)
	protected.HandleFunc("/subscriptions/cancel", subscriptionsH.Cancel).Methods(http.MethodPut)
	protected.HandleFunc("/swaps/history", subscriptionsH.History).Methods(http.MethodGet)

	protected.HandleFunc("/complaints", listingsH.Complaints).Methods(http.MethodGet)
	protected.HandleFunc("/complaints", complaintsH.Create).Methods(http.MethodPost)
	protected.HandleFunc("/complaints/{id}", complaintsH.Get).Methods(http.MethodGet)

	// ============================================================
	// STAFF ROUTES
	// ============================================================

	staff := api.PathPrefix("/staff").Subrouter()
	staff.Use(middleware.RequireRole(domain.RoleStaff))

	staff.HandleFunc("/stock-requests/batches", restockH.StockBatches).Methods(http.MethodGet)
	staff.HandleFunc("/stock-requests/batches", restockH.SubmitStockBatch).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireRole(domain.RoleAdmin))

	admin.HandleFunc("/battery-requests/batches", restockH.BatteryBatches).Methods(http.MethodGet)
	admin.HandleFunc("/battery-requests/batches", restockH.SubmitBatteryBatch).Methods(http.MethodPost)

	admin.HandleFunc("/customers", listingsH.Customers).Methods(http.MethodGet)
	admin.HandleFunc("/staff", listingsH.Staff).Methods(http.MethodGet)

	admin.HandleFunc("/plans", plansH.Create).Methods(http.MethodPost)
	admin.HandleFunc("/plans/{id}", plansH.Get).Methods(http.MethodGet)
	admin.HandleFunc("/plans/{id}", plansH.Update).Methods(http.MethodPut)
	admin.HandleFunc("/plans/{id}", plansH.Delete).Methods(http.MethodDelete)

	// Оборачиваем роутер: восстановление после паники и CORS для web UI
	var handler http.Handler = r
	if len(cfg.CORS.AllowedOrigins) > 0 {
		handler = gorillaHandlers.CORS(
			gorillaHandlers.AllowedOrigins(cfg.CORS.AllowedOrigins),
			gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
			gorillaHandlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
			gorillaHandlers.ExposedHeaders([]string{"Retry-After"}),
			gorillaHandlers.AllowCredentials(),
		)(handler)
		log.Info("CORS enabled for %v", cfg.CORS.AllowedOrigins)
	}
	handler = gorillaHandlers.RecoveryHandler(
		gorillaHandlers.RecoveryLogger(recoveryLogger{log: log}),
		gorillaHandlers.PrintRecoveryStack(true),
	)(handler)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	purgeJob.Stop(shutdownCtx)
	log.Info("Server stopped gracefully")
}
