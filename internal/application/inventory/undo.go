package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/history"
)

// UndoUseCase deshace una eliminación: localiza la entrada Remove del
// timestamp dado, reconstruye la fila desde su snapshot y la reinserta.
// Comparte el mutex global del Service para serializar las mutaciones.
type UndoUseCase struct {
	svc *Service
}

// NewUndoUseCase construye el caso de uso sobre el servicio de inventario.
func NewUndoUseCase(svc *Service) *UndoUseCase {
	return &UndoUseCase{svc: svc}
}

// UndoRemove restaura la fila eliminada en el timestamp dado.
//
// La búsqueda devuelve la PRIMERA entrada Remove con ese timestamp en orden
// de escritura (ante timestamps duplicados gana la más antigua). La fila se
// agrega al FINAL de la tabla con un índice posicional nuevo, nunca en su
// posición original. Deshacer dos veces el mismo timestamp inserta la fila
// dos veces; el log nunca se edita, así que la entrada Remove sigue ahí.
func (uc *UndoUseCase) UndoRemove(ctx context.Context, timestamp string) (entity.Item, error) {
	uc.svc.mu.Lock()
	defer uc.svc.mu.Unlock()

	entry, err := uc.svc.log.FindFirst(timestamp, entity.ActionRemove)
	if err != nil {
		if err == domain.ErrNotFound {
			return entity.Item{}, domain.ErrNothingToRestore
		}
		return entity.Item{}, err
	}
	if entry.RestoreData == "" {
		return entity.Item{}, domain.ErrNothingToRestore
	}

	it, err := history.Decode(entry.RestoreData)
	if err != nil {
		return entity.Item{}, err
	}
	// Snapshots de logs previos a la asignación de IDs no traen "id".
	if it.ID == "" {
		it.ID = uuid.New().String()
	}

	if err := uc.svc.store.Append(it); err != nil {
		return entity.Item{}, err
	}
	if err := uc.svc.log.Append(entity.ActionUndoRemove, "Restored item: "+it.Describe(), ""); err != nil {
		// La fila ya quedó restaurada en la tabla pero sin registro de la
		// acción compensatoria.
		return it, domain.ErrPartialCommit
	}
	return it, nil
}
