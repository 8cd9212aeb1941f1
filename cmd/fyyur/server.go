package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fyyur/internal/app/artists"
	"fyyur/internal/app/shows"
	"fyyur/internal/app/venues"
	"fyyur/internal/config"
	"fyyur/internal/http/middleware"
	"fyyur/internal/httpapi"
)

// dataStore is satisfied by both the Postgres store and memstore.
type dataStore interface {
	venues.Store
	artists.Store
	shows.Store
}

func newHTTPHandler(cfg *config.Config, store dataStore) http.Handler {
	venueSvc := venues.New(store)
	artistSvc := artists.New(store)
	showSvc := shows.New(store)

	api := httpapi.New(venueSvc, artistSvc, showSvc).Routes()

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.Handler())
	// Metrics sits innermost so it sees the route pattern ServeMux records
	// on the request.
	mux.Handle("/", middleware.Metrics()(api))

	return middleware.Chain(mux,
		middleware.Recovery(),
		middleware.RequestLogging(),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)
}
