package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

const removeTS = "2025-01-01 10:00:00"

// Eliminar y deshacer con el timestamp de la eliminación deja en la tabla
// una fila igual campo por campo a la eliminada, anexada al final (la
// posición original no se restaura).
func TestUndoRemove_RestauraFilaAlFinal(t *testing.T) {
	original := steelBolt()
	filler := entity.Item{ID: "f", Category: "Tools", Name: "Hammer", Quantity: 10}
	svc, store, _ := buildService(original, filler)
	undo := inventory.NewUndoUseCase(svc)

	_, err := svc.Remove(context.Background(), 0)
	require.NoError(t, err)

	restored, err := undo.UndoRemove(context.Background(), removeTS)
	require.NoError(t, err)
	assert.Equal(t, original, restored)

	items, err := store.List()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Hammer", items[0].Name, "la fila restaurada no recupera su índice original")
	assert.Equal(t, original, items[1])
}

// El deshacer queda registrado como entrada nueva "Undo Remove"; el log
// jamás se edita.
func TestUndoRemove_RegistraAccionCompensatoria(t *testing.T) {
	svc, _, log := buildService(steelBolt())
	undo := inventory.NewUndoUseCase(svc)

	_, err := svc.Remove(context.Background(), 0)
	require.NoError(t, err)
	_, err = undo.UndoRemove(context.Background(), removeTS)
	require.NoError(t, err)

	entries, err := log.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, entity.ActionRemove, entries[0].Action)
	assert.NotEmpty(t, entries[0].RestoreData, "la entrada Remove conserva su snapshot")
	assert.Equal(t, entity.ActionUndoRemove, entries[1].Action)
	assert.Empty(t, entries[1].RestoreData)
}

// Deshacer dos veces el mismo timestamp inserta la fila dos veces; no hay
// deduplicación. Comportamiento deliberado, ver DESIGN.md.
func TestUndoRemove_DobleUndoDuplicaLaFila(t *testing.T) {
	svc, store, _ := buildService(steelBolt())
	undo := inventory.NewUndoUseCase(svc)

	_, err := svc.Remove(context.Background(), 0)
	require.NoError(t, err)

	_, err = undo.UndoRemove(context.Background(), removeTS)
	require.NoError(t, err)
	_, err = undo.UndoRemove(context.Background(), removeTS)
	require.NoError(t, err)

	items, err := store.List()
	require.NoError(t, err)
	require.Len(t, items, 2, "dos undo del mismo timestamp = dos filas")
	assert.Equal(t, items[0].Name, items[1].Name)
}

// Dos Remove con el mismo timestamp, escritos A y luego B: el undo
// restaura A (primera coincidencia en orden de escritura), no B.
func TestUndoRemove_TimestampDuplicadoRestauraLaPrimera(t *testing.T) {
	a := steelBolt()
	b := entity.Item{ID: "b", Category: "Tools", Name: "Hammer", Quantity: 10}
	svc, store, _ := buildService(a, b)
	undo := inventory.NewUndoUseCase(svc)

	// ambos remove caen en el mismo segundo del reloj fijo
	_, err := svc.Remove(context.Background(), 0)
	require.NoError(t, err)
	_, err = svc.Remove(context.Background(), 0)
	require.NoError(t, err)

	restored, err := undo.UndoRemove(context.Background(), removeTS)
	require.NoError(t, err)
	assert.Equal(t, a, restored)

	items, err := store.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Steel bolt", items[0].Name)
}

func TestUndoRemove_NadaQueRestaurar(t *testing.T) {
	svc, _, log := buildService(steelBolt())
	undo := inventory.NewUndoUseCase(svc)

	// sin entrada Remove para ese timestamp
	_, err := undo.UndoRemove(context.Background(), "1999-12-31 23:59:59")
	assert.ErrorIs(t, err, domain.ErrNothingToRestore)

	// entrada Remove presente pero sin snapshot (línea corta en el archivo)
	require.NoError(t, log.Append(entity.ActionRemove, "Removed item: sin snapshot", ""))
	_, err = undo.UndoRemove(context.Background(), removeTS)
	assert.ErrorIs(t, err, domain.ErrNothingToRestore)
}

// Un snapshot ilegible jamás se ejecuta ni se interpreta: falla tipado.
func TestUndoRemove_SnapshotCorrupto(t *testing.T) {
	svc, store, log := buildService()
	undo := inventory.NewUndoUseCase(svc)

	require.NoError(t, log.Append(entity.ActionRemove, "Removed item: X", `{'Category': 'Tools'}`))

	_, err := undo.UndoRemove(context.Background(), removeTS)
	assert.ErrorIs(t, err, domain.ErrCorruptRestoreData)

	items, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, items, "nada se inserta si el snapshot no valida")
}

// La fila ya volvió a la tabla pero el log no pudo anexar la entrada
// compensatoria: PartialCommit, nunca éxito silencioso.
func TestUndoRemove_FallaDeLogEsPartialCommit(t *testing.T) {
	svc, store, log := buildService(steelBolt())
	undo := inventory.NewUndoUseCase(svc)

	_, err := svc.Remove(context.Background(), 0)
	require.NoError(t, err)

	log.FailNext = errors.New("disco lleno")
	_, err = undo.UndoRemove(context.Background(), removeTS)
	assert.ErrorIs(t, err, domain.ErrPartialCommit)

	items, err := store.List()
	require.NoError(t, err)
	assert.Len(t, items, 1, "la fila sí quedó restaurada en la tabla")
}
