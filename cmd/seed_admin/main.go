// seed_admin crea la cuenta inicial (rol gerente) con los datos de las variables SEED_*.
// Es idempotente: si el email o el carnet ya existen informa y termina sin error.
//
// Uso: SEED_EMAIL=... SEED_NUMERO_CARNET=... SEED_PASSWORD=... go run ./cmd/seed_admin
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/hospedaje-lider-api/internal/infrastructure/postgres"
	"github.com/jhoicas/hospedaje-lider-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Migraciones: %v\n", err)
		os.Exit(1)
	}

	res, err := seed(ctx, postgres.NewTxRunner(pool), cfg.Seed, time.Now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Seed: %v\n", err)
		os.Exit(1)
	}
	if res.creado {
		fmt.Printf("Cuenta creada: %s (%s) id=%s rol=%s\n", res.email, res.carnet, res.id, res.rol)
		return
	}
	fmt.Printf("La cuenta ya existe (%s); no se hizo ningún cambio\n", res.motivo)
}
