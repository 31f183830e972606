package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/hospedaje-lider-api/internal/domain/entity"
	"github.com/jhoicas/hospedaje-lider-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

const usuarioColumns = `id, nombre, apellidos, email, fecha_nacimiento, numero_carnet, password_hash,
	rol, activo, foto_ci1, foto_ci2, created_at`

// UsuarioRepo implementación de UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	db Querier
}

// NewUsuarioRepository construye el repositorio sobre un pool o una transacción.
func NewUsuarioRepository(db Querier) *UsuarioRepo {
	return &UsuarioRepo{db: db}
}

// Create inserta el usuario. Las violaciones de unicidad se traducen a ErrDuplicateEmail,
// ErrDuplicateCarnet o ErrDuplicate.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuario (` + usuarioColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		u.ID, u.Nombre, u.Apellidos, u.Email, u.FechaNacimiento, u.NumeroCarnet, u.PasswordHash,
		u.Rol, u.Activo, u.FotoCI1, u.FotoCI2, u.CreatedAt,
	)
	if err != nil {
		if dup := mapUniqueViolation(err); dup != nil {
			return dup
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// FindByID devuelve (nil, nil) si no existe.
func (r *UsuarioRepo) FindByID(ctx context.Context, id string) (*entity.Usuario, error) {
	return r.findOne(ctx, "id", id)
}

// FindByEmail busca sin distinguir mayúsculas.
func (r *UsuarioRepo) FindByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	return r.findOne(ctx, "lower(email)", strings.ToLower(email))
}

// FindByCarnet busca por número de carnet.
func (r *UsuarioRepo) FindByCarnet(ctx context.Context, carnet string) (*entity.Usuario, error) {
	return r.findOne(ctx, "numero_carnet", carnet)
}

// findOne column es siempre una constante interna, nunca entrada del cliente.
func (r *UsuarioRepo) findOne(ctx context.Context, column, value string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuario WHERE ` + column + ` = $1`
	var u entity.Usuario
	err := r.db.QueryRow(ctx, query, value).Scan(
		&u.ID, &u.Nombre, &u.Apellidos, &u.Email, &u.FechaNacimiento, &u.NumeroCarnet, &u.PasswordHash,
		&u.Rol, &u.Activo, &u.FotoCI1, &u.FotoCI2, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by %s: %w", column, err)
	}
	return &u, nil
}
