package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// HistoryLog puerto del log de acciones. Solo se anexa: ninguna entrada se
// edita ni se borra; deshacer es una entrada nueva.
type HistoryLog interface {
	// Append escribe un registro con el timestamp de reloj actual a
	// precisión de segundos. restoreData vacío = sin snapshot.
	Append(action, details, restoreData string) error
	// FindFirst recorre el log en orden de escritura (el más antiguo
	// primero) y devuelve la PRIMERA entrada cuyo timestamp y acción
	// coinciden exactamente; ErrNotFound si ninguna.
	FindFirst(timestamp, action string) (*entity.HistoryEntry, error)
	// List devuelve todas las entradas en orden de escritura.
	List() ([]entity.HistoryEntry, error)
}
