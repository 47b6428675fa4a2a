package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/graphql-go/handler"
	"github.com/joho/godotenv"

	"github.com/lucamancino/spese/internal/catalog"
	catalogStore "github.com/lucamancino/spese/internal/catalog/store"
	"github.com/lucamancino/spese/internal/catalog/upstream"
	"github.com/lucamancino/spese/internal/config"
	"github.com/lucamancino/spese/internal/database"
	"github.com/lucamancino/spese/internal/graph"
	speseHttp "github.com/lucamancino/spese/internal/http"
	"github.com/lucamancino/spese/internal/ledger"
	ledgerStore "github.com/lucamancino/spese/internal/ledger/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.DB.URL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		ledgerService  = ledger.NewService(ledgerStore.New(db))
		catalogService = catalog.NewService(
			catalogStore.New(db),
			upstream.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.Timeout),
		)
	)

	schema, err := graph.NewSchema(graph.NewResolver(ledgerService, catalogService))
	if err != nil {
		slog.Error("failed to build schema", "error", err)
		os.Exit(1)
	}

	gql := handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: true,
	})

	router := speseHttp.New(gql)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
