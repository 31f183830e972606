package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/hospedaje-lider-api/internal/application/documentos"
	"github.com/jhoicas/hospedaje-lider-api/internal/application/dto"
	"github.com/jhoicas/hospedaje-lider-api/internal/domain"
	"github.com/jhoicas/hospedaje-lider-api/internal/domain/entity"
	"github.com/jhoicas/hospedaje-lider-api/internal/domain/repository"
	"github.com/jhoicas/hospedaje-lider-api/pkg/jwt"
)

// TokenTTL vigencia fija del token emitido en login.
const TokenTTL = 24 * time.Hour

// MinPasswordLen longitud mínima (en caracteres) de la contraseña.
const MinPasswordLen = 6

// Config configuración del caso de uso.
type Config struct {
	JWTSecret   string
	Issuer      string
	DefaultRole string // rol asignado en el auto-registro
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	repo      repository.UsuarioRepository
	docs      *documentos.Service
	cfg       Config
	dummyHash []byte
	now       func() time.Time
}

// NewAuthUseCase construye el caso de uso. docs puede ser nil (sin almacenamiento).
func NewAuthUseCase(repo repository.UsuarioRepository, docs *documentos.Service, cfg Config) *AuthUseCase {
	if cfg.DefaultRole == "" {
		cfg.DefaultRole = entity.RolGerente
	}
	// hash de relleno para que un usuario inexistente cueste lo mismo que una contraseña incorrecta
	dummy, _ := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	return &AuthUseCase{repo: repo, docs: docs, cfg: cfg, dummyHash: dummy, now: time.Now}
}

// Login busca por email (si el identificador contiene @) o por carnet, verifica la contraseña
// y emite un token de 24 h. Usuario inexistente, inactivo o contraseña incorrecta devuelven
// el mismo ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	ident := in.Identificador()
	if ident == "" || in.Password == "" {
		return nil, domain.NewValidationError("numeroCarnet", "numeroCarnet y password son requeridos")
	}

	var (
		u   *entity.Usuario
		err error
	)
	if strings.Contains(ident, "@") {
		u, err = uc.repo.FindByEmail(ctx, strings.ToLower(ident))
	} else {
		u, err = uc.repo.FindByCarnet(ctx, ident)
	}
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if u == nil {
		_ = bcrypt.CompareHashAndPassword(uc.dummyHash, []byte(in.Password))
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !u.Activo {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(uc.cfg.JWTSecret, u.ID, u.Rol, uc.cfg.Issuer, TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	return &dto.LoginResponse{Token: token, Usuario: *ToUsuarioResponse(u)}, nil
}

// Register valida, hashea la contraseña y persiste un usuario activo con el rol por defecto.
// Devuelve ErrDuplicateEmail / ErrDuplicateCarnet / ErrDuplicate si el email o el carnet ya
// existen. Los duplicados se detectan antes de subir las fotos; si la inserción falla igual,
// las fotos subidas se eliminan.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	fechaNac, err := validarRegistro(&in)
	if err != nil {
		return nil, err
	}
	carnet := in.NumeroCarnet.String()
	if err := uc.verificarDisponible(ctx, in.Email, carnet); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var subidas []string
	for _, foto := range []*string{in.FotoCI1, in.FotoCI2} {
		key, err := uc.docs.Normalizar(ctx, carnet, foto)
		if err != nil {
			return nil, uc.descartar(ctx, err, subidas)
		}
		subidas = append(subidas, key)
	}

	u := &entity.Usuario{
		ID:              uuid.NewString(),
		Nombre:          in.Nombre,
		Apellidos:       in.Apellidos,
		Email:           in.Email,
		FechaNacimiento: fechaNac,
		NumeroCarnet:    carnet,
		PasswordHash:    string(hash),
		Rol:             uc.cfg.DefaultRole,
		Activo:          true,
		FotoCI1:         vacioANil(in.FotoCI1),
		FotoCI2:         vacioANil(in.FotoCI2),
		CreatedAt:       uc.now().UTC(),
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		if !domain.IsDuplicate(err) {
			err = fmt.Errorf("crear usuario: %w", err)
		}
		return nil, uc.descartar(ctx, err, subidas)
	}
	return ToUsuarioResponse(u), nil
}

func (uc *AuthUseCase) verificarDisponible(ctx context.Context, email, carnet string) error {
	u, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("buscar email: %w", err)
	}
	if u != nil {
		return domain.ErrDuplicateEmail
	}
	u, err = uc.repo.FindByCarnet(ctx, carnet)
	if err != nil {
		return fmt.Errorf("buscar carnet: %w", err)
	}
	if u != nil {
		return domain.ErrDuplicateCarnet
	}
	return nil
}

// descartar elimina las fotos subidas y devuelve cause, unido al error de borrado si lo hubo.
func (uc *AuthUseCase) descartar(ctx context.Context, cause error, keys []string) error {
	if err := uc.docs.Descartar(context.WithoutCancel(ctx), keys...); err != nil {
		return errors.Join(cause, err)
	}
	return cause
}

func validarRegistro(in *dto.RegisterRequest) (time.Time, error) {
	in.Nombre = strings.TrimSpace(in.Nombre)
	in.Apellidos = strings.TrimSpace(in.Apellidos)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.FechaNac = strings.TrimSpace(in.FechaNac)
	in.NumeroCarnet = dto.Carnet(in.NumeroCarnet.String())

	requeridos := []struct{ campo, valor string }{
		{"nombre", in.Nombre},
		{"apellidos", in.Apellidos},
		{"email", in.Email},
		{"fechaNac", in.FechaNac},
		{"numeroCarnet", string(in.NumeroCarnet)},
		{"password", in.Password},
	}
	for _, r := range requeridos {
		if r.valor == "" {
			return time.Time{}, domain.NewValidationError(r.campo, "es requerido")
		}
	}
	if !strings.Contains(in.Email, "@") {
		return time.Time{}, domain.NewValidationError("email", "formato inválido")
	}
	if utf8.RuneCountInString(in.Password) < MinPasswordLen {
		return time.Time{}, domain.NewValidationError("password", fmt.Sprintf("debe tener al menos %d caracteres", MinPasswordLen))
	}
	fecha, err := ParseFechaNacimiento(in.FechaNac)
	if err != nil {
		return time.Time{}, domain.NewValidationError("fechaNac", "formato inválido (YYYY-MM-DD)")
	}
	return fecha, nil
}

// ParseFechaNacimiento acepta YYYY-MM-DD o RFC3339.
func ParseFechaNacimiento(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errors.New("fecha inválida")
	}
	return t, nil
}

func vacioANil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

// ToUsuarioResponse proyecta un usuario sin el hash de contraseña.
func ToUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:              u.ID,
		Nombre:          u.Nombre,
		Apellidos:       u.Apellidos,
		Email:           u.Email,
		FechaNacimiento: u.FechaNacimiento.Format("2006-01-02"),
		NumeroCarnet:    u.NumeroCarnet,
		Rol:             u.Rol,
		Activo:          u.Activo,
		FotoCI1:         u.FotoCI1,
		FotoCI2:         u.FotoCI2,
		CreatedAt:       u.CreatedAt,
	}
}
