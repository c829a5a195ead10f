package api

import (
	"log"
	"net/http"
	"time"

	"github.com/ethanbaker/api/pkg/api_key"
	api_utils "github.com/ethanbaker/api/pkg/utils"
	"github.com/ethanbaker/states-api/pkg/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	health_module "github.com/ethanbaker/states-api/internal/api/modules/health"
	states_module "github.com/ethanbaker/states-api/internal/api/modules/states"
)

// Start initializes the states module and serves the API until the server fails
func Start(cfg *utils.Config) {
	// Initialized configuration settings
	port := cfg.GetWithDefault("API_PORT", "8080")

	service, err := states_module.Init(cfg)
	if err != nil {
		log.Fatal("[API-MAIN]: Failed to initialize states module: ", err)
	}

	engine := NewEngine(cfg, service)

	log.Printf("[API-MAIN]: Listening on :%s", port)
	if err := runServer(engine, ":"+port, service); err != nil {
		log.Fatal("[API-MAIN]: Failed to start server: ", err)
	}
}

// runServer serves engine on addr and closes the service's store once the
// server stops
func runServer(engine *gin.Engine, addr string, service *states_module.StatesService) error {
	err := engine.Run(addr)

	if closeErr := service.Close(); closeErr != nil {
		log.Printf("[API-MAIN]: Failed to close store: %v", closeErr)
	}

	return err
}

// NewEngine builds the gin engine with all modules registered against service
func NewEngine(cfg *utils.Config, service *states_module.StatesService) *gin.Engine {
	// Add app level settings/routes
	engine := gin.Default()
	engine.NoRoute(api_utils.NoRouteHandler)

	// Add trusted proxies
	engine.SetTrustedProxies(nil)

	// Add CORS using gin-contrib/cors (https://github.com/gin-contrib/cors for documentation)
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.GetList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		AllowMethods:     []string{http.MethodOptions, http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Mutating routes require an API key only when one is configured
	var guards []gin.HandlerFunc
	if apiKey := cfg.Get("API_KEY"); apiKey != "" {
		guards = append(guards, api_key.APIKeyHeaderHandler(func(key string) bool {
			return key == apiKey
		}))
	} else {
		log.Println("[API-MAIN]: Warning, API_KEY not set, fun fact edits are unauthenticated")
	}

	// States are served from the root and from the '/api' base group
	for _, group := range []*gin.RouterGroup{engine.Group("/"), engine.Group("/api")} {
		health_module.RegisterRoutes(group, service)
		states_module.RegisterRoutes(group, service, guards...)
	}

	return engine
}
