package repository

import (
	"context"

	"github.com/jhoicas/hospedaje-lider-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
// Los Find* devuelven (nil, nil) si no existe el registro.
type UsuarioRepository interface {
	// Create persiste el usuario. Devuelve domain.ErrDuplicateEmail, domain.ErrDuplicateCarnet
	// o domain.ErrDuplicate si se viola una restricción única.
	Create(ctx context.Context, u *entity.Usuario) error
	FindByID(ctx context.Context, id string) (*entity.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*entity.Usuario, error)
	FindByCarnet(ctx context.Context, numeroCarnet string) (*entity.Usuario, error)
}
