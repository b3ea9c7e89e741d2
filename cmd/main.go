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
	"github.com/redis/go-redis/v9"

	cancelReservaHandler "github.com/ucc-comedor/ComedorService/internal/api/handlers/cancel_reserva"
	carritoItemsHandler "github.com/ucc-comedor/ComedorService/internal/api/handlers/carrito_items"
	confirmarPagoHandler "github.com/ucc-comedor/ComedorService/internal/api/handlers/confirmar_pago"
	createCarritoHandler "github.com/ucc-comedor/ComedorService/internal/api/handlers/create_carrito"
	createReservaHandler "github.com/ucc-comedor/ComedorService/internal/api/handlers/create_reserva"
	getAvailableSlotsHandler "github.com/ucc-comedor/ComedorService/internal/api/handlers/get_available_slots"
	getCarritoHandler "github.com/ucc-comedor/ComedorService/internal/api/handlers/get_carrito"
	getMenuDiaHandler "github.com/ucc-comedor/ComedorService/internal/api/handlers/get_menu_dia"
	getReservaHandler "github.com/ucc-comedor/ComedorService/internal/api/handlers/get_reserva"
	getSedeHandler "github.com/ucc-comedor/ComedorService/internal/api/handlers/get_sede"
	getSedeReservasHandler "github.com/ucc-comedor/ComedorService/internal/api/handlers/get_sede_reservas"
	getUserReservasHandler "github.com/ucc-comedor/ComedorService/internal/api/handlers/get_user_reservas"
	listConsumiblesHandler "github.com/ucc-comedor/ComedorService/internal/api/handlers/list_consumibles"
	listSedesHandler "github.com/ucc-comedor/ComedorService/internal/api/handlers/list_sedes"
	"github.com/ucc-comedor/ComedorService/internal/api/middleware"
	"github.com/ucc-comedor/ComedorService/internal/config"
	carritoStore "github.com/ucc-comedor/ComedorService/internal/infra/carrito"
	"github.com/ucc-comedor/ComedorService/internal/infra/occupancy"
	consumibleRepo "github.com/ucc-comedor/ComedorService/internal/infra/storage/consumible"
	menuRepo "github.com/ucc-comedor/ComedorService/internal/infra/storage/menu"
	reservaRepo "github.com/ucc-comedor/ComedorService/internal/infra/storage/reserva"
	sedeRepo "github.com/ucc-comedor/ComedorService/internal/infra/storage/sede"
	backofficeClient "github.com/ucc-comedor/ComedorService/internal/integrations/backoffice"
	"github.com/ucc-comedor/ComedorService/internal/queue"
	carritosService "github.com/ucc-comedor/ComedorService/internal/service/carritos"
	catalogoService "github.com/ucc-comedor/ComedorService/internal/service/catalogo"
	reservasService "github.com/ucc-comedor/ComedorService/internal/service/reservas"
	confirmarPagoUC "github.com/ucc-comedor/ComedorService/internal/usecase/confirmar_pago"
	createReservaUC "github.com/ucc-comedor/ComedorService/internal/usecase/create_reserva"
	getAvailableSlotsUC "github.com/ucc-comedor/ComedorService/internal/usecase/get_available_slots"
	"github.com/ucc-comedor/ComedorService/pkg/dbmetrics"
	"github.com/ucc-comedor/ComedorService/pkg/logger"
	"github.com/ucc-comedor/ComedorService/pkg/metrics"
	"github.com/ucc-comedor/ComedorService/pkg/simpletxmanager"
	"github.com/ucc-comedor/ComedorService/pkg/txmanager"
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

	log.Info("Starting ComedorService...")
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

	// Подключаемся к Redis: счетчики занятости слотов и черновики карритос
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Инициализируем клиент backoffice (справочник пользователей и их сальдо)
	backoffice := backofficeClient.NewClient(
		cfg.Backoffice.URL,
		time.Duration(cfg.Backoffice.Timeout)*time.Second,
		log,
	)
	log.Info("Backoffice client initialized (url=%s, timeout=%ds)", cfg.Backoffice.URL, cfg.Backoffice.Timeout)

	// Инициализируем репозитории и менеджер транзакций (с метриками или без)
	var (
		reservaRepository    *reservaRepo.Repository
		sedeRepository       *sedeRepo.Repository
		consumibleRepository *consumibleRepo.Repository
		menuRepository       *menuRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservaRepository = reservaRepo.NewRepository(wrappedDB, log)
		sedeRepository = sedeRepo.NewRepository(wrappedDB)
		consumibleRepository = consumibleRepo.NewRepository(wrappedDB)
		menuRepository = menuRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservaRepository = reservaRepo.NewRepository(db, log)
		sedeRepository = sedeRepo.NewRepository(db)
		consumibleRepository = consumibleRepo.NewRepository(db)
		menuRepository = menuRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем хранилища в Redis
	occupancyTracker := occupancy.NewTracker(redisClient)
	carritos := carritoStore.NewStore(redisClient, time.Duration(cfg.Redis.CarritoTTL)*time.Second)

	// Инициализируем сервисы
	reservaSvc := reservasService.NewService(
		reservaRepository,
		occupancyTracker,
		&reservasService.RealTimeProvider{},
		log,
	)
	catalogoSvc := catalogoService.NewService(
		sedeRepository,
		consumibleRepository,
		menuRepository,
		log,
	)
	carritoSvc := carritosService.NewService(
		carritos,
		reservaRepository,
		consumibleRepository,
		&carritosService.RealTimeProvider{},
		log,
	)

	// Инициализируем use cases
	createReservaUseCase := createReservaUC.NewUseCase(
		reservaRepository,
		sedeRepository,
		occupancyTracker,
		txMgr,
		cfg.Reservas.CostoReserva,
		cfg.Reservas.DiasAnticipacion,
		cfg.Reservas.DuracionSlotMin,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		sedeRepository,
		occupancyTracker,
		cfg.Reservas.DiasAnticipacion,
		cfg.Reservas.DuracionSlotMin,
		log,
	)
	confirmarPagoUseCase := confirmarPagoUC.NewUseCase(
		carritos,
		reservaRepository,
		backoffice,
		txMgr,
		cfg.Reservas.CostoReserva,
		log,
	)

	// Запускаем консьюмер событий неявки (если очередь включена)
	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	defer stopConsumer()

	if cfg.Queue.Enabled {
		ausenciaConsumer := queue.NewAusenciaConsumer(
			cfg.Queue.URL,
			cfg.Queue.AusenciaQueue,
			reservaSvc,
			log,
		)
		go func() {
			if err := ausenciaConsumer.Run(consumerCtx); err != nil {
				log.Error("Ausencia consumer stopped: %v", err)
			}
		}()
		log.Info("Ausencia consumer started (queue=%s)", cfg.Queue.AusenciaQueue)
	}

	// Инициализируем handlers
	createReserva := createReservaHandler.NewHandler(createReservaUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getReserva := getReservaHandler.NewHandler(reservaSvc, log)
	cancelReserva := cancelReservaHandler.NewHandler(reservaSvc, log)
	getUserReservas := getUserReservasHandler.NewHandler(reservaSvc, log)
	getSedeReservas := getSedeReservasHandler.NewHandler(reservaSvc, log)
	listSedes := listSedesHandler.NewHandler(catalogoSvc, log)
	getSede := getSedeHandler.NewHandler(catalogoSvc, log)
	listConsumibles := listConsumiblesHandler.NewHandler(catalogoSvc, log)
	getMenuDia := getMenuDiaHandler.NewHandler(catalogoSvc, log)
	createCarrito := createCarritoHandler.NewHandler(carritoSvc, log)
	getCarrito := getCarritoHandler.NewHandler(carritoSvc, log)
	carritoItems := carritoItemsHandler.NewHandler(carritoSvc, log)
	confirmarPago := confirmarPagoHandler.NewHandler(confirmarPagoUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
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

	// Каталог sedes
	api.HandleFunc("/sedes", listSedes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sedes/{sedeId}", getSede.Handle).Methods(http.MethodGet)

	// Доступные слоты sede на дату
	api.HandleFunc("/sedes/{sedeId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Меню sede на дату и turno
	api.HandleFunc("/sedes/{sedeId}/menu", getMenuDia.Handle).Methods(http.MethodGet)

	// Каталог consumibles
	api.HandleFunc("/consumibles", listConsumibles.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Резервации ---
	// Создание резервации
	protected.HandleFunc("/reservas", createReserva.Handle).Methods(http.MethodPost)

	// Получение резервации по ID
	protected.HandleFunc("/reservas/{reservaId}", getReserva.Handle).Methods(http.MethodGet)

	// Отмена резервации
	protected.HandleFunc("/reservas/{reservaId}/cancelar", cancelReserva.Handle).Methods(http.MethodPatch)

	// История резерваций пользователя
	protected.HandleFunc("/users/{userId}/reservas", getUserReservas.Handle).Methods(http.MethodGet)

	// --- Кассирская сторона ---
	// Список резерваций sede
	protected.HandleFunc("/sedes/{sedeId}/reservas", getSedeReservas.Handle).Methods(http.MethodGet)

	// Открытие каррито для резервации
	protected.HandleFunc("/reservas/{reservaId}/carrito", createCarrito.Handle).Methods(http.MethodPost)

	// Работа с каррито
	protected.HandleFunc("/carritos/{carritoId}", getCarrito.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/carritos/{carritoId}/items", carritoItems.HandleAdd).Methods(http.MethodPost)
	protected.HandleFunc("/carritos/{carritoId}/items/{consumibleId}", carritoItems.HandleRemove).Methods(http.MethodDelete)

	// Подтверждение оплаты и финализация резервации
	protected.HandleFunc("/carritos/{carritoId}/confirmar", confirmarPago.Handle).Methods(http.MethodPost)

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

	// Останавливаем консьюмер очереди
	stopConsumer()

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
