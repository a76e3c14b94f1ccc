package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"jovemservicos/internal/config"
	"jovemservicos/internal/database"
	"jovemservicos/internal/middleware"
	"jovemservicos/internal/modules/auth"
	"jovemservicos/internal/modules/booking"
	"jovemservicos/internal/modules/catalog"
	"jovemservicos/internal/modules/notification"
	"jovemservicos/internal/modules/profit"
	"jovemservicos/internal/modules/wallet"
	jwtsvc "jovemservicos/internal/pkg/jwt"
	"jovemservicos/internal/pkg/pin"
	"jovemservicos/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadRuntimeConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(&wallet.Wallet{}, &wallet.Transaction{}, &notification.Event{}); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	profitRepo := repository.NewProfitConfigRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(catalogRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	hub := notification.NewHub()
	defer hub.Close()
	notifService := notification.NewService(db, hub, catalogRepo)
	notifHandler := notification.NewHandler(notifService, hub)

	walletService := wallet.NewService(db)
	walletHandler := wallet.NewHandler(walletService, func(c *gin.Context) (int64, bool) {
		jv, err := catalogRepo.GetJovemByUserID(c.Request.Context(), c.GetInt64("user_id"))
		if err != nil {
			return 0, false
		}
		return jv.ID, true
	})

	profitConfig := profit.NewConfigService(profitRepo)
	profitAggregator := profit.NewAggregator(bookingRepo)
	profitHandler := profit.NewHandler(profitConfig, profitAggregator)

	bookingService := booking.NewService(
		bookingRepo,
		catalogRepo,
		catalogRepo,
		profitConfig,
		pin.NewGenerator(),
		notifService,
		walletService,
	)
	bookingHandler := booking.NewHandler(bookingService, catalogRepo)

	r := gin.Default()

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			bookingHandler.RegisterRoutes(protected)
			notifHandler.RegisterRoutes(protected)

			jovem := protected.Group("/")
			jovem.Use(middleware.RequireRole("jovem"))
			{
				walletHandler.RegisterRoutes(jovem)
			}

			admin := protected.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				profitHandler.RegisterRoutes(admin)
				catalogHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
