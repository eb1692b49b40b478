// @title                       Cazuela Chapina API
// @version                     1.0
// @BasePath                    /api/v1
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/cazuela-chapina-api/docs"
	appanalytics "github.com/jhoicas/cazuela-chapina-api/internal/application/analytics"
	"github.com/jhoicas/cazuela-chapina-api/internal/application/auth"
	"github.com/jhoicas/cazuela-chapina-api/internal/application/inventory"
	"github.com/jhoicas/cazuela-chapina-api/internal/application/ports"
	"github.com/jhoicas/cazuela-chapina-api/internal/application/pos"
	"github.com/jhoicas/cazuela-chapina-api/internal/application/usecase"
	infraai "github.com/jhoicas/cazuela-chapina-api/internal/infrastructure/ai"
	infrakafka "github.com/jhoicas/cazuela-chapina-api/internal/infrastructure/kafka"
	infrapdf "github.com/jhoicas/cazuela-chapina-api/internal/infrastructure/pdf"
	"github.com/jhoicas/cazuela-chapina-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/cazuela-chapina-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/cazuela-chapina-api/internal/interfaces/http"
	"github.com/jhoicas/cazuela-chapina-api/pkg/config"
	"github.com/jhoicas/cazuela-chapina-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	rdb, err := infraredis.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer rdb.Close()

	// Repositorios
	userRepo := postgres.NewUserRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	variantRepo := postgres.NewVariantRepository(pool)
	comboRepo := postgres.NewComboRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	ingredientRepo := postgres.NewIngredientRepository(pool)
	movementRepo := postgres.NewInventoryMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Sesiones y carritos en Redis
	sessions := infraredis.NewSessionStore(rdb)
	carts := infraredis.NewCartStore(rdb, cfg.Redis.CartTTL)

	// Eventos de órdenes: Kafka solo si hay brokers configurados
	var publisher ports.OrderPublisher = ports.NopOrderPublisher{}
	if cfg.Kafka.Enabled() {
		kp := infrakafka.NewOrderPublisher(cfg.Kafka)
		defer func() {
			if err := kp.Close(); err != nil {
				log.Error().Err(err).Msg("cerrar publicador Kafka")
			}
		}()
		publisher = kp
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.OrderTopic).Msg("publicación de órdenes activa")
	}

	loc := cfg.POS.Location()

	// Casos de uso
	authUC := auth.NewAuthUseCase(userRepo, branchRepo, sessions, carts, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)
	catalogUC := usecase.NewCatalogUseCase(variantRepo)
	comboUC := usecase.NewComboUseCase(comboRepo, variantRepo)
	checkoutUC := pos.NewCheckoutUseCase(carts, variantRepo, comboRepo, txRunner, publisher, pos.CheckoutConfig{
		TaxRate:        cfg.POS.TaxRate,
		CurrencyPrefix: cfg.POS.CurrencyPrefix,
	}, log)
	receiptUC := pos.NewReceiptUseCase(saleRepo, branchRepo, infrapdf.NewMarotoReceiptGenerator(loc), ports.ReceiptInfo{
		BusinessName:   "La Cazuela Chapina",
		CurrencyPrefix: cfg.POS.CurrencyPrefix,
	})
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner)
	ingredientUC := inventory.NewIngredientUseCase(ingredientRepo, movementRepo, cfg.POS.CurrencyPrefix)
	replenishmentUC := inventory.NewReplenishmentUseCase(ingredientRepo, movementRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(saleRepo, variantRepo, loc, cfg.POS.CurrencyPrefix)

	anthropicSvc := infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	assistantUC := usecase.NewAssistantUseCase(anthropicSvc, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 60, // el stream del asistente dura hasta 30 s
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Path:        "docs",
		Title:       "Cazuela Chapina API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		CatalogUC:        catalogUC,
		ComboUC:          comboUC,
		Checkout:         checkoutUC,
		Receipt:          receiptUC,
		RegisterMovement: registerMovementUC,
		IngredientUC:     ingredientUC,
		Replenishment:    replenishmentUC,
		DashboardUC:      dashboardUC,
		AssistantUC:      assistantUC,
		Sessions:         sessions,
		JWTSecret:        cfg.JWT.Secret,
		LoginPerMinute:   cfg.RateLimit.LoginPerMinute,
		Location:         loc,
		Log:              log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
