package ports

import "context"

// DocumentStore almacenamiento de objetos para las fotos del carnet de identidad.
type DocumentStore interface {
	// Put guarda data bajo key y devuelve la URL pública del objeto.
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
	// Delete elimina el objeto key. Borrar una key inexistente no es error.
	Delete(ctx context.Context, key string) error
}
