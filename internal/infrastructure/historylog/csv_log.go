// Package historylog implementa el puerto HistoryLog sobre un archivo CSV
// de solo anexado, legible por humanos. Formato por línea:
//
//	"2025-01-01 10:00:00","Remove","Removed item: ...","{...snapshot...}"
//
// Todas las celdas van entre comillas dobles; una comilla literal se escapa
// duplicándola. La primera línea del archivo es la cabecera fija.
package historylog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

const header = "Timestamp,Action,Details,RestoreData"

// Log implementa repository.HistoryLog sobre un archivo local.
type Log struct {
	path string
	now  func() time.Time
}

// New crea el log sobre la ruta dada. El archivo se crea en el primer
// Append; un archivo ausente se trata como log vacío, no como error.
func New(path string) *Log {
	return NewWithClock(path, time.Now)
}

// NewWithClock permite inyectar el reloj (tests de timestamps duplicados).
func NewWithClock(path string, now func() time.Time) *Log {
	return &Log{path: path, now: now}
}

// Append escribe un registro al final del archivo, con cabecera incluida si
// el archivo aún no existe.
func (l *Log) Append(action, details, restoreData string) error {
	ts := l.now().Format(entity.TimestampLayout)

	_, statErr := os.Stat(l.path)
	writeHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: abrir log de historial: %v", domain.ErrStorageIO, err)
	}
	defer f.Close()

	var b strings.Builder
	if writeHeader {
		b.WriteString(header + "\n")
	}
	b.WriteString(quote(ts) + "," + quote(action) + "," + quote(details) + "," + quote(restoreData) + "\n")

	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("%w: escribir log de historial: %v", domain.ErrStorageIO, err)
	}
	return nil
}

// FindFirst devuelve la primera entrada (la más antigua) que coincide
// exactamente en timestamp y acción.
func (l *Log) FindFirst(timestamp, action string) (*entity.HistoryEntry, error) {
	entries, err := l.List()
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.Timestamp == timestamp && e.Action == action {
			entry := e
			return &entry, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List lee todas las entradas en orden de escritura. Una línea con menos de
// cuatro celdas no aborta la lectura: las celdas finales faltantes se
// tratan como ausentes (RestoreData vacío).
func (l *Log) List() ([]entity.HistoryEntry, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: abrir log de historial: %v", domain.ErrStorageIO, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var entries []entity.HistoryEntry
	first := true
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Línea malformada: se omite sin abortar el recorrido.
			continue
		}
		if first {
			first = false
			continue // cabecera
		}
		entries = append(entries, entryFromRecord(record))
	}
	return entries, nil
}

func entryFromRecord(record []string) entity.HistoryEntry {
	var e entity.HistoryEntry
	if len(record) > 0 {
		e.Timestamp = record[0]
	}
	if len(record) > 1 {
		e.Action = record[1]
	}
	if len(record) > 2 {
		e.Details = record[2]
	}
	if len(record) > 3 {
		e.RestoreData = record[3]
	}
	return e
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
