// Package documentos sube a almacenamiento las fotos del carnet enviadas como data URL.
package documentos

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/hospedaje-lider-api/internal/application/ports"
	"github.com/jhoicas/hospedaje-lider-api/internal/domain"
)

// MaxBytes tamaño máximo de una foto decodificada.
const MaxBytes = 5 << 20

var extensiones = map[string]string{
	"image/jpeg":      "jpg",
	"image/png":       "png",
	"image/webp":      "webp",
	"application/pdf": "pdf",
}

// Service normaliza fotos: data URL -> URL pública. Con store nil no modifica nada.
type Service struct {
	store ports.DocumentStore
}

// NewService construye el servicio. store puede ser nil (almacenamiento deshabilitado).
func NewService(store ports.DocumentStore) *Service {
	return &Service{store: store}
}

// Habilitado indica si hay almacenamiento configurado.
func (s *Service) Habilitado() bool {
	return s != nil && s.store != nil
}

// Normalizar sube *foto si es un data URL y la reemplaza por la URL pública.
// Devuelve la key subida ("" si no se subió nada). Valores vacíos o URLs normales se dejan igual.
func (s *Service) Normalizar(ctx context.Context, carpeta string, foto *string) (string, error) {
	if !s.Habilitado() || foto == nil || !strings.HasPrefix(*foto, "data:") {
		return "", nil
	}
	mime, data, err := decodeDataURL(*foto)
	if err != nil {
		return "", err
	}
	ext, ok := extensiones[mime]
	if !ok {
		return "", domain.NewValidationError("fotoCI", "tipo de archivo no soportado: "+mime)
	}
	if carpeta = strings.TrimSpace(carpeta); carpeta == "" {
		carpeta = "sin-carnet"
	}
	key := fmt.Sprintf("usuarios/%s/%s.%s", url.PathEscape(carpeta), uuid.NewString(), ext)
	publicURL, err := s.store.Put(ctx, key, mime, data)
	if err != nil {
		return "", fmt.Errorf("subir documento: %w", err)
	}
	*foto = publicURL
	return key, nil
}

// Descartar elimina objetos subidos por Normalizar cuya operación no se completó.
// Las keys vacías se ignoran.
func (s *Service) Descartar(ctx context.Context, keys ...string) error {
	if !s.Habilitado() {
		return nil
	}
	var errs []error
	for _, k := range keys {
		if k == "" {
			continue
		}
		if err := s.store.Delete(ctx, k); err != nil {
			errs = append(errs, fmt.Errorf("eliminar documento %s: %w", k, err))
		}
	}
	return errors.Join(errs...)
}

// decodeDataURL separa "data:<mime>;base64,<payload>".
func decodeDataURL(v string) (string, []byte, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(v, "data:"), ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return "", nil, domain.NewValidationError("fotoCI", "data URL inválido")
	}
	mime := strings.ToLower(strings.TrimSuffix(meta, ";base64"))
	if base64.StdEncoding.DecodedLen(len(payload)) > MaxBytes+3 {
		return "", nil, domain.NewValidationError("fotoCI", "el archivo supera 5 MB")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, domain.NewValidationError("fotoCI", "base64 inválido")
	}
	if len(data) > MaxBytes {
		return "", nil, domain.NewValidationError("fotoCI", "el archivo supera 5 MB")
	}
	return mime, data, nil
}
