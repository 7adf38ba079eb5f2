package historylog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/historylog"
)

// fixedClock devuelve siempre el mismo instante; sirve para forzar
// timestamps duplicados.
func fixedClock(s string) func() time.Time {
	ts, err := time.Parse(entity.TimestampLayout, s)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return ts }
}

func tempLogPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "history.csv")
}

// Un archivo ausente es un log vacío, no un error.
func TestList_ArchivoAusente(t *testing.T) {
	l := historylog.New(tempLogPath(t))

	entries, err := l.List()
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = l.FindFirst("2025-01-01 10:00:00", entity.ActionRemove)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La cabecera se escribe una sola vez, en la creación del archivo.
func TestAppend_CabeceraUnaSolaVez(t *testing.T) {
	path := tempLogPath(t)
	l := historylog.New(path)

	require.NoError(t, l.Append(entity.ActionAdd, "Added item: Hammer", ""))
	require.NoError(t, l.Append(entity.ActionAdd, "Added item: Drill", ""))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(raw), "Timestamp,Action,Details,RestoreData"))

	entries, err := l.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Added item: Hammer", entries[0].Details)
	assert.Equal(t, "Added item: Drill", entries[1].Details)
}

// Las comillas dentro de un valor se escapan duplicándolas en el archivo y
// vuelven intactas al leer.
func TestAppend_EscapaComillas(t *testing.T) {
	path := tempLogPath(t)
	l := historylog.New(path)

	details := `Removed item: Item=Steel bolt 1/4"`
	snapshot := `{"item":"Steel bolt 1/4\""}`
	require.NoError(t, l.Append(entity.ActionRemove, details, snapshot))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `Steel bolt 1/4""`)

	entries, err := l.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, details, entries[0].Details)
	assert.Equal(t, snapshot, entries[0].RestoreData)
}

// Dos entradas Remove con el mismo timestamp: FindFirst devuelve la PRIMERA
// escrita (orden físico del archivo, la más antigua), nunca la segunda.
func TestFindFirst_TimestampDuplicadoGanaLaPrimera(t *testing.T) {
	l := historylog.NewWithClock(tempLogPath(t), fixedClock("2025-01-01 10:00:00"))

	require.NoError(t, l.Append(entity.ActionRemove, "Removed item: A", `{"item":"A"}`))
	require.NoError(t, l.Append(entity.ActionRemove, "Removed item: B", `{"item":"B"}`))

	entry, err := l.FindFirst("2025-01-01 10:00:00", entity.ActionRemove)
	require.NoError(t, err)
	assert.Equal(t, "Removed item: A", entry.Details)
	assert.Equal(t, `{"item":"A"}`, entry.RestoreData)
}

// FindFirst exige coincidencia exacta de acción además de timestamp.
func TestFindFirst_FiltraPorAccion(t *testing.T) {
	l := historylog.NewWithClock(tempLogPath(t), fixedClock("2025-01-01 10:00:00"))

	require.NoError(t, l.Append(entity.ActionAdd, "Added item: A", ""))

	_, err := l.FindFirst("2025-01-01 10:00:00", entity.ActionRemove)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Una línea con solo tres de las cuatro celdas no aborta el recorrido: la
// entrada se devuelve con RestoreData ausente.
func TestList_LineaConTresCeldas(t *testing.T) {
	path := tempLogPath(t)
	content := "Timestamp,Action,Details,RestoreData\n" +
		"\"2025-01-01 10:00:00\",\"Remove\",\"Removed item: sin snapshot\"\n" +
		"\"2025-01-01 10:00:01\",\"Add\",\"Added item: X\",\"\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	l := historylog.New(path)
	entries, err := l.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Empty(t, entries[0].RestoreData)

	entry, err := l.FindFirst("2025-01-01 10:00:00", entity.ActionRemove)
	require.NoError(t, err)
	assert.Empty(t, entry.RestoreData, "sin celda RestoreData se trata como snapshot ausente")
}

// El formato en disco está congelado: cualquier cambio de byte rompe la
// compatibilidad con logs existentes.
func TestAppend_FormatoEnDisco(t *testing.T) {
	path := tempLogPath(t)
	l := historylog.NewWithClock(path, fixedClock("2025-01-01 10:00:00"))

	require.NoError(t, l.Append(entity.ActionAdd, "Added item: Hammer", ""))
	require.NoError(t, l.Append(entity.ActionRemove, `Removed item: Drill "HD"`, `{"item":"Drill \"HD\""}`))
	require.NoError(t, l.Append(entity.ActionUndoRemove, `Restored item: Drill "HD"`, ""))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "history_log", raw)
}
