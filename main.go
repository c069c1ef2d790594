package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ukramer/maze-solver-dfs/api"
	api_i "github.com/ukramer/maze-solver-dfs/api/i"
	"github.com/ukramer/maze-solver-dfs/api/identity"
	solveapi "github.com/ukramer/maze-solver-dfs/api/solve"
	"github.com/ukramer/maze-solver-dfs/config"
	"github.com/ukramer/maze-solver-dfs/infrastruture/cache"
	"github.com/ukramer/maze-solver-dfs/infrastruture/repo"
	"github.com/ukramer/maze-solver-dfs/infrastruture/token"
	"github.com/ukramer/maze-solver-dfs/service"
	"github.com/ukramer/maze-solver-dfs/service/i"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient     *mongo.Client
	redisClient     *redis.Client
	userRepo        i.UserRepo
	solutionRepo    i.SolutionRepo
	solutionCache   *cache.RedisSolutionCache
	jwtTokenizer    i.Tokenizer
	authService     i.Authenticator
	solveService    i.MazeSolver
	authController  api_i.Controller
	solveController api_i.Controller
	router          *api.Router
	appLogger       *log.Logger
)

func newLogger(prefix, color string) *log.Logger {
	return log.New(os.Stdout, fmt.Sprintf("%s[%s]%s ", color, prefix, config.ColorReset), log.LstdFlags)
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Printf("Failed to connect to MongoDB: %v", err)
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Printf("MongoDB ping failed: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Printf("Redis ping failed: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Connected to Redis")
}

func initRepos(client *mongo.Client) {
	userRepo = repo.NewUserRepo(client, config.Envs.DBName, "users")
	solutionRepo = repo.NewSolutionRepo(client, config.Envs.DBName, "solutions")
	appLogger.Println("Repositories initialized")
}

func initSolutionCache() {
	var err error
	solutionCache, err = cache.NewRedisSolutionCache(redisClient, &cache.Options{
		TTL: time.Duration(config.Envs.CacheTTLSeconds) * time.Second,
	})
	if err != nil {
		appLogger.Printf("Creating solution cache: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Solution cache initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Println("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
	if err != nil {
		appLogger.Printf("Creating auth service: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Auth service initialized")
}

func initSolveService() {
	var err error
	solveService, err = service.NewSolveService(&service.SolveConfig{
		SolutionRepo: solutionRepo,
		UserRepo:     userRepo,
		Cache:        solutionCache,
		Locker:       solutionCache,
		Logger:       newLogger("SOLVER", config.ColorCyan),
	})
	if err != nil {
		appLogger.Printf("Creating solve service: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Solve service initialized")
}

func initControllers() {
	authController = identity.NewIdentityServer(authService)

	var err error
	solveController, err = solveapi.NewSolveController(solveService)
	if err != nil {
		appLogger.Printf("Creating solve controller: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, solveController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Println("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	appLogger = newLogger("APP", config.ColorGreen)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initRepos(mongoClient)
	initSolutionCache()
	initJWTTokenizer()
	initAuthService()
	initSolveService()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Printf("Starting server: %v", err)
		os.Exit(1)
	}
}
