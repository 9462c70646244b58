package internal

import (
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/karloscodes/cartridge"

	"salescope/internal/http"
)

// apiCORSConfig is the CORS setup shared by the API endpoints. The API is
// open to any origin; there is no browser session to protect.
var apiCORSConfig = &cors.Config{
	AllowOrigins: "*",
	AllowMethods: "POST,GET,OPTIONS",
	AllowHeaders: "Origin, Content-Type, Accept",
}

// MountAppRoutes mounts all application routes using cartridge's route API
func MountAppRoutes(srv *cartridge.Server) {
	// API endpoints are called server-to-server as well as from browsers,
	// so Sec-Fetch-Site validation is off for them.
	apiConfig := &cartridge.RouteConfig{
		EnableCORS:         true,
		CORSConfig:         apiCORSConfig,
		EnableSecFetchSite: cartridge.Bool(false),
	}

	// Health check endpoint
	srv.Get("/_health", http.HealthIndexAction)
	srv.Head("/_health", http.HealthIndexAction)

	srv.Post("/seed", http.SeedCreateAction, apiConfig)
	srv.Post("/reports", http.ReportsCreateAction, apiConfig)
	srv.Get("/reports", http.ReportsListAction, apiConfig)
}
