package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hospedaje-lider-api/internal/domain"
	"github.com/jhoicas/hospedaje-lider-api/internal/domain/entity"
	"github.com/jhoicas/hospedaje-lider-api/internal/domain/repository"
	"github.com/jhoicas/hospedaje-lider-api/internal/infrastructure/postgres"
	"github.com/jhoicas/hospedaje-lider-api/pkg/config"
)

// TestUsuarioRepoIntegration ejercita el repositorio contra una base real.
func TestUsuarioRepoIntegration(t *testing.T) {
	if os.Getenv("RUN_PG_INTEGRATION") != "true" {
		t.Skip("set RUN_PG_INTEGRATION=true to run this integration test")
	}
	for _, path := range []string{".env", "../.env", "../../.env", "../../../.env"} {
		_ = godotenv.Overload(path)
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	require.NoError(t, err)
	defer pool.Close()
	require.NoError(t, postgres.Migrate(ctx, pool))

	repo := postgres.NewUsuarioRepository(pool)
	sufijo := time.Now().UnixNano()
	u := &entity.Usuario{
		ID:              fmt.Sprintf("00000000-0000-4000-8000-%012d", sufijo%1_000_000_000_000),
		Nombre:          "Prueba",
		Apellidos:       "Integración",
		Email:           fmt.Sprintf("it_%d@example.com", sufijo),
		FechaNacimiento: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		NumeroCarnet:    fmt.Sprintf("IT%d", sufijo),
		PasswordHash:    "$2a$10$hash",
		Rol:             entity.RolGerente,
		Activo:          true,
		CreatedAt:       time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, u))
	t.Cleanup(func() { _, _ = pool.Exec(context.Background(), `DELETE FROM usuario WHERE id = $1`, u.ID) })

	got, err := repo.FindByCarnet(ctx, u.NumeroCarnet)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.Email, got.Email)

	got, err = repo.FindByEmail(ctx, "IT_"+u.Email[3:])
	require.NoError(t, err)
	require.NotNil(t, got, "la búsqueda por email ignora mayúsculas")

	missing, err := repo.FindByID(ctx, "00000000-0000-4000-8000-ffffffffffff")
	require.NoError(t, err)
	assert.Nil(t, missing)

	dupEmail := *u
	dupEmail.ID = fmt.Sprintf("00000000-0000-4000-9000-%012d", sufijo%1_000_000_000_000)
	dupEmail.NumeroCarnet = u.NumeroCarnet + "x"
	assert.ErrorIs(t, repo.Create(ctx, &dupEmail), domain.ErrDuplicateEmail)

	dupCarnet := *u
	dupCarnet.ID = dupEmail.ID
	dupCarnet.Email = "otro_" + u.Email
	assert.ErrorIs(t, repo.Create(ctx, &dupCarnet), domain.ErrDuplicateCarnet)

	// la transacción revierte si el callback falla
	runner := postgres.NewTxRunner(pool)
	errAbort := fmt.Errorf("abortar")
	err = runner.Run(ctx, func(usuarios repository.UsuarioRepository) error {
		tmp := *u
		tmp.ID = dupEmail.ID
		tmp.Email = "tx_" + u.Email
		tmp.NumeroCarnet = u.NumeroCarnet + "tx"
		require.NoError(t, usuarios.Create(ctx, &tmp))
		return errAbort
	})
	assert.ErrorIs(t, err, errAbort)
	gone, err := repo.FindByEmail(ctx, "tx_"+u.Email)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
