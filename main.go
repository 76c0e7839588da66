package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parkwise/config"
	"parkwise/database"
	slotsRepo "parkwise/database/repository/slots"
	userRepoPkg "parkwise/database/repository/user"
	"parkwise/handlers"
	"parkwise/routes"
	"parkwise/services/maps"
	"parkwise/services/parking"
	"parkwise/services/prediction"
	"parkwise/services/user"
	"parkwise/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// The model artifact is a startup requirement: refuse to serve without it.
	predictor, err := prediction.Load(config.AppConfig.ModelPath)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load availability model: %v", err)
	}
	logger.Sugar().Infof("Availability model loaded from %s", config.AppConfig.ModelPath)

	mongoClient, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	db := mongoClient.Database(config.AppConfig.DBName)

	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	slotRepo := slotsRepo.NewMongoSlotRepo(db)
	userRepo := userRepoPkg.NewMongoUserRepo(db)

	// external collaborators.
	mapsClient := maps.NewClient(
		config.AppConfig.GoogleAPIKey,
		config.UpstreamTimeout(),
		logger,
		maps.WithCache(utils.GetCacheClient()),
	)

	// services.
	userService := &user.DefaultUserService{
		Repo:   userRepo,
		Logger: logger,
	}
	parkingService := &parking.DefaultParkingService{
		Geocoder:  mapsClient,
		Finder:    mapsClient,
		Predictor: predictor,
		Slots:     slotRepo,
		Logger:    logger,
	}

	authHandler := handlers.NewAuthHandler(userService)
	parkingHandler := handlers.NewParkingHandler(parkingService)

	routes.RegisterRoutes(router, routes.Deps{
		Auth:      authHandler,
		Parking:   parkingHandler,
		UserRepo:  userRepo,
		AuthCache: utils.GetAuthCacheClient(),
	})

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := database.Disconnect(mongoClient); err != nil {
		logger.Sugar().Warnf("main: failed to close MongoDB connection: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
