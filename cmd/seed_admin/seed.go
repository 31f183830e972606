package main

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/hospedaje-lider-api/internal/application/auth"
	"github.com/jhoicas/hospedaje-lider-api/internal/domain/entity"
	"github.com/jhoicas/hospedaje-lider-api/internal/domain/repository"
	"github.com/jhoicas/hospedaje-lider-api/pkg/config"
)

// txRunner ejecuta fn dentro de una transacción.
type txRunner interface {
	Run(ctx context.Context, fn func(usuarios repository.UsuarioRepository) error) error
}

type resultado struct {
	creado bool
	motivo string
	id     string
	email  string
	carnet string
	rol    string
}

// seed crea la cuenta gerente inicial si ni el email ni el carnet existen.
func seed(ctx context.Context, tx txRunner, in config.SeedConfig, now func() time.Time) (*resultado, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	carnet := strings.TrimSpace(in.NumeroCarnet)
	if email == "" || carnet == "" || in.Password == "" {
		return nil, errors.New("SEED_EMAIL, SEED_NUMERO_CARNET y SEED_PASSWORD son requeridos")
	}
	if utf8.RuneCountInString(in.Password) < auth.MinPasswordLen {
		return nil, errors.New("SEED_PASSWORD debe tener al menos 6 caracteres")
	}
	fechaNac, err := auth.ParseFechaNacimiento(in.FechaNacimiento)
	if err != nil {
		return nil, errors.New("SEED_FECHA_NACIMIENTO inválida (YYYY-MM-DD)")
	}

	res := &resultado{email: email, carnet: carnet, rol: entity.RolGerente}
	err = tx.Run(ctx, func(usuarios repository.UsuarioRepository) error {
		if u, err := usuarios.FindByEmail(ctx, email); err != nil {
			return err
		} else if u != nil {
			res.motivo = "email " + email
			return nil
		}
		if u, err := usuarios.FindByCarnet(ctx, carnet); err != nil {
			return err
		} else if u != nil {
			res.motivo = "carnet " + carnet
			return nil
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u := &entity.Usuario{
			ID:              uuid.NewString(),
			Nombre:          in.Nombre,
			Apellidos:       in.Apellidos,
			Email:           email,
			FechaNacimiento: fechaNac,
			NumeroCarnet:    carnet,
			PasswordHash:    string(hash),
			Rol:             entity.RolGerente,
			Activo:          true,
			CreatedAt:       now().UTC(),
		}
		if err := usuarios.Create(ctx, u); err != nil {
			return err
		}
		res.creado = true
		res.id = u.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
