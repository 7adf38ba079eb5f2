package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidIndex       = errors.New("índice de fila fuera de rango")
	ErrNothingToRestore   = errors.New("nada que restaurar")
	ErrCorruptRestoreData = errors.New("datos de restauración corruptos")
	ErrStorageIO          = errors.New("error de E/S del almacenamiento")

	// ErrPartialCommit indica que la tabla se escribió pero el log de
	// historial no: el estado puede quedar inconsistente y el caller debe
	// enterarse, nunca tratarse como éxito.
	ErrPartialCommit = errors.New("operación aplicada parcialmente: tabla y log pueden estar inconsistentes")
)
