package main

import (
	"context"
	"net/http"

	"geotag-api/internal/config"
	"geotag-api/internal/geocoder"
	"geotag-api/internal/geotoken"
	"geotag-api/internal/handler"
	"geotag-api/internal/observability"
	"geotag-api/internal/repository"
	"geotag-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	if level, err := zerolog.ParseLevel(config.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	metrics := observability.NewMetrics()
	codec := geotoken.Default()

	// Initialize layers
	repo := repository.NewRepository(conn)

	locationService := service.NewLocationService(codec, metrics)
	reportService := service.NewReportService(repo, codec)

	var describer service.Describer
	if config.GeocoderEnabled {
		client := geocoder.NewClient(codec, config.GeocoderBaseURL, config.GeocoderTimeout, log.Logger)
		describer = geocoder.NewCachedDescriber(client, config.GeocoderCacheSize, metrics)
	}
	describeService := service.NewDescribeService(describer, log.Logger)

	locationHandler := handler.NewLocationHandler(locationService)
	reportHandler := handler.NewReportHandler(reportService)
	placeHandler := handler.NewPlaceHandler(describeService)

	r := gin.Default()
	r.Use(observability.Middleware(metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/locations", locationHandler.Tag)
	r.POST("/locations/extract", locationHandler.Extract)
	r.GET("/locations/:token/area", locationHandler.Area)
	r.GET("/locations/:token/neighbors", locationHandler.Neighbors)
	r.GET("/locations/:token/contains", locationHandler.Contains)
	r.GET("/locations/:token/place", placeHandler.Place)

	r.POST("/reports", reportHandler.Create)
	r.GET("/reports", reportHandler.Search)

	r.Run(config.ServerAddress)
}
