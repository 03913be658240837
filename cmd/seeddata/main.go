// Command seeddata loads the fixed set of demo products and customers into the
// local store. Safe to run repeatedly.
package main

import (
	"context"
	"os"
	"time"

	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/config"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/infra"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/repository"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/seed"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DatabasePath).Msg("failed to open database")
	}

	productoRepo := repository.NewProductoRepository(db)
	clienteRepo := repository.NewClienteRepository(db)

	if err := seed.Load(context.Background(), productoRepo, clienteRepo); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	log.Info().Msg("sample data loaded")
}
