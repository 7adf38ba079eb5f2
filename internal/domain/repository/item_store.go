package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ItemStore puerto del almacén tabular de inventario. El archivo se lee y
// escribe completo en cada operación; no hay actualizaciones parciales a
// nivel de almacenamiento.
type ItemStore interface {
	// List devuelve todas las filas en orden posicional.
	List() ([]entity.Item, error)
	// Get devuelve la fila en el índice dado; ErrInvalidIndex fuera de rango.
	Get(index int) (entity.Item, error)
	// Append agrega la fila al final de la tabla y persiste.
	Append(it entity.Item) error
	// UpdateAt reemplaza la fila del índice dado y persiste; ErrInvalidIndex
	// fuera de rango.
	UpdateAt(index int, it entity.Item) error
	// DeleteAt elimina la fila del índice dado, persiste y la devuelve;
	// ErrInvalidIndex fuera de rango. Los índices posteriores se corren.
	DeleteAt(index int) (entity.Item, error)
	// FilePath ruta del archivo subyacente (para export directo).
	FilePath() string
}
