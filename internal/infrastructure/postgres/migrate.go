package postgres

import (
	"context"
	"fmt"
)

// Migrate crea la tabla usuario si no existe. Email y numero_carnet son únicos.
func Migrate(ctx context.Context, q Querier) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS usuario (
			id UUID PRIMARY KEY,
			nombre TEXT NOT NULL,
			apellidos TEXT NOT NULL,
			email TEXT NOT NULL,
			fecha_nacimiento DATE NOT NULL,
			numero_carnet TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			rol TEXT NOT NULL DEFAULT 'cliente',
			activo BOOLEAN NOT NULL DEFAULT TRUE,
			foto_ci1 TEXT,
			foto_ci2 TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT ` + constraintEmail + ` UNIQUE (email),
			CONSTRAINT ` + constraintCarnet + ` UNIQUE (numero_carnet),
			CONSTRAINT usuario_rol_check CHECK (rol IN ('administrador', 'cliente', 'gerente'))
		);`,
		`ALTER TABLE usuario ADD COLUMN IF NOT EXISTS foto_ci1 TEXT;`,
		`ALTER TABLE usuario ADD COLUMN IF NOT EXISTS foto_ci2 TEXT;`,
	}
	for _, stmt := range stmts {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}
