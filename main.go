package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skillswap_server/config"
	"skillswap_server/logger"
	"skillswap_server/middleware"
	"skillswap_server/routes"
	"skillswap_server/services"
	"skillswap_server/socket"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// logger is not built yet
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		os.Stderr.WriteString("failed to build logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	ctx := context.Background()

	// Initialize AWS clients
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		log.Fatal("Failed to load AWS config", zap.Error(err))
	}
	dynamoService := &services.DynamoService{
		Client: services.NewDynamoDBClient(awsCfg, cfg.Storage.DynamoDB.Endpoint),
		Logger: log,
	}
	s3Service := services.NewS3Service(s3.NewFromConfig(awsCfg), cfg.AWS.S3Bucket)

	// Match persistence: exactly one driver
	var matchRepo services.MatchRepository
	switch cfg.Storage.Driver {
	case config.DriverRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:         cfg.Storage.Redis.Address,
			Password:     cfg.Storage.Redis.Password,
			DB:           cfg.Storage.Redis.DB,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		})
		defer rdb.Close()
		matchRepo = services.NewRedisMatchRepository(rdb, cfg.Storage.Redis.KeyPrefix, log)
	default:
		matchRepo = services.NewDynamoMatchRepository(dynamoService, cfg.Storage.DynamoDB.MatchTable, log)
	}
	log.Info("Match storage initialized", zap.String("driver", cfg.Storage.Driver))

	authService := services.NewAuthService(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	auth := &middleware.AuthMiddleware{Verifier: authService, Logger: log}

	socketServer := socket.NewSocketServer(authService, log)
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Error("Socket server stopped", zap.Error(err))
		}
	}()
	defer socketServer.Close()

	// Initialize Services
	matchService := services.NewMatchService(matchRepo, socketServer, log)
	userService := &services.UserService{Dynamo: dynamoService, Logger: log}
	skillService := &services.SkillService{Dynamo: dynamoService, Logger: log}

	// Initialize the router
	r := mux.NewRouter()
	routes.RegisterRoutes(r, matchService)
	routes.RegisterMatchRoutes(r, matchService, auth, log)
	routes.RegisterUserRoutes(r, userService, log)
	routes.RegisterSkillRoutes(r, skillService, log)
	routes.RegisterS3Routes(r, s3Service, auth, log)
	r.PathPrefix("/socket.io/").Handler(socketServer.Handler())

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           corsHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
	}
}
