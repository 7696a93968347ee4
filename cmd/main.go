package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/shopspring/decimal"

	"github.com/Wealthy-grace/house-Property-service/internal/app"
	"github.com/Wealthy-grace/house-Property-service/internal/config"
	"github.com/Wealthy-grace/house-Property-service/internal/controllers"
	"github.com/Wealthy-grace/house-Property-service/internal/middleware"
	"github.com/Wealthy-grace/house-Property-service/internal/repositories"
	"github.com/Wealthy-grace/house-Property-service/internal/routes"
	"github.com/Wealthy-grace/house-Property-service/internal/services"
	"github.com/Wealthy-grace/house-Property-service/internal/utils"
)

func main() {
	// Money fields serialize as JSON numbers, matching the NUMERIC columns.
	decimal.MarshalJSONWithoutQuotes = true

	log := utils.NewLogger(config.AppName, os.Getenv("LOG_LEVEL"))
	cfg := config.LoadConfig(log)

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize property-service")
	}
	defer application.Close()

	// Repositories
	propertyRepo := repositories.NewPropertyRepository(application.DB)

	if cfg.SeedDemoData {
		if err := app.SeedDemoProperties(context.Background(), propertyRepo, log); err != nil {
			log.WithError(err).Fatal("Failed to seed demo properties")
		}
	}

	// Services
	propertyService := services.NewPropertyService(propertyRepo, log)

	// Controllers
	healthController := controllers.NewHealthController(application.DB)
	propertyController := controllers.NewPropertyController(propertyService, log)

	// Router setup
	router := mux.NewRouter()
	router.Use(middleware.RequestID(log))

	// Public routes
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Properties, propertyController.ListPropertiesHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.PropertiesAvailable, propertyController.AvailablePropertiesHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.PropertyByID, propertyController.GetPropertyHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.SearchLocationByPath, propertyController.SearchByLocationPathHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.SearchLocation, propertyController.SearchByLocationBodyHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.SearchHouseTypeByPath, propertyController.SearchByHouseTypePathHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.SearchHouseType, propertyController.SearchByHouseTypeBodyHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.SearchSurfaceArea, propertyController.SearchBySurfaceAreaHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.SearchInterior, propertyController.SearchByInteriorHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.SearchRentAmount, propertyController.SearchByRentAmountHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.SearchBedrooms, propertyController.SearchByBedroomsHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.SearchPriceRange, propertyController.SearchByPriceRangeHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.SearchAdvanced, propertyController.AdvancedSearchHandler).Methods(http.MethodGet)

	// Secured routes for admins and property managers
	secured := router.NewRoute().Subrouter()
	secured.Use(middleware.ManagerAuthMiddleware(cfg.JWTSecret))
	secured.HandleFunc(routes.Properties, propertyController.CreatePropertyHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.PropertyByID, propertyController.UpdatePropertyHandler).Methods(http.MethodPut)
	secured.HandleFunc(routes.PropertyStatus, propertyController.UpdatePropertyStatusHandler).Methods(http.MethodPut)
	secured.HandleFunc(routes.PropertyByID, propertyController.DeletePropertyHandler).Methods(http.MethodDelete)

	co := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppUrl},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		AllowCredentials: true,
	})

	log.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		log.WithError(err).Fatal("property-service failed to start")
	}
}
