// Package excel implementa el puerto ItemStore sobre un libro .xlsx. El
// archivo es la única fuente de verdad: cada operación lo lee completo,
// aplica el cambio en memoria y lo reescribe completo.
package excel

import (
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

const sheetName = "Sheet1"

// idColumn se persiste como octava columna, detrás de las siete de datos.
const idColumn = "ID"

// ItemStore implementa repository.ItemStore sobre un archivo .xlsx.
type ItemStore struct {
	path string
}

// NewItemStore abre el almacén sobre la ruta dada, creando el archivo con
// solo la cabecera si no existe (equivalente a arrancar con inventario
// vacío).
func NewItemStore(path string) (*ItemStore, error) {
	s := &ItemStore{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.writeAll(nil); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// FilePath ruta del archivo subyacente.
func (s *ItemStore) FilePath() string { return s.path }

// List devuelve todas las filas en orden posicional.
func (s *ItemStore) List() ([]entity.Item, error) {
	return s.readAll()
}

// Get devuelve la fila del índice dado.
func (s *ItemStore) Get(index int) (entity.Item, error) {
	items, err := s.readAll()
	if err != nil {
		return entity.Item{}, err
	}
	if index < 0 || index >= len(items) {
		return entity.Item{}, domain.ErrInvalidIndex
	}
	return items[index], nil
}

// Append agrega la fila al final y persiste.
func (s *ItemStore) Append(it entity.Item) error {
	items, err := s.readAll()
	if err != nil {
		return err
	}
	return s.writeAll(append(items, it))
}

// UpdateAt reemplaza la fila del índice dado y persiste.
func (s *ItemStore) UpdateAt(index int, it entity.Item) error {
	items, err := s.readAll()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(items) {
		return domain.ErrInvalidIndex
	}
	items[index] = it
	return s.writeAll(items)
}

// DeleteAt elimina la fila del índice dado, persiste y la devuelve. Los
// índices posteriores se corren una posición.
func (s *ItemStore) DeleteAt(index int) (entity.Item, error) {
	items, err := s.readAll()
	if err != nil {
		return entity.Item{}, err
	}
	if index < 0 || index >= len(items) {
		return entity.Item{}, domain.ErrInvalidIndex
	}
	removed := items[index]
	items = append(items[:index], items[index+1:]...)
	if err := s.writeAll(items); err != nil {
		return entity.Item{}, err
	}
	return removed, nil
}

func (s *ItemStore) readAll() ([]entity.Item, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: abrir %s: %v", domain.ErrStorageIO, s.path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: leer hoja %s: %v", domain.ErrStorageIO, sheetName, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	items := make([]entity.Item, 0, len(rows)-1)
	for _, row := range rows[1:] {
		items = append(items, itemFromRow(row))
	}
	return items, nil
}

func (s *ItemStore) writeAll(items []entity.Item) error {
	f := excelize.NewFile()
	defer f.Close()

	headerRow := make([]interface{}, 0, len(entity.Columns)+1)
	for _, c := range entity.Columns {
		headerRow = append(headerRow, c)
	}
	headerRow = append(headerRow, idColumn)
	if err := f.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		return fmt.Errorf("%w: escribir cabecera: %v", domain.ErrStorageIO, err)
	}

	for i, it := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrStorageIO, err)
		}
		row := []interface{}{
			it.Category, it.Subcategory, it.Name, it.BrandType,
			it.LengthCapacity, it.Quantity, it.Notes, it.ID,
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("%w: escribir fila %d: %v", domain.ErrStorageIO, i, err)
		}
	}

	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("%w: guardar %s: %v", domain.ErrStorageIO, s.path, err)
	}
	return nil
}

// itemFromRow tolera filas cortas (celdas finales vacías que excelize
// recorta) y archivos previos sin columna ID, a los que se les asigna un
// ID nuevo que quedará persistido en la próxima escritura.
func itemFromRow(row []string) entity.Item {
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	qty, _ := strconv.Atoi(cell(5))
	it := entity.Item{
		Category:       cell(0),
		Subcategory:    cell(1),
		Name:           cell(2),
		BrandType:      cell(3),
		LengthCapacity: cell(4),
		Quantity:       qty,
		Notes:          cell(6),
		ID:             cell(7),
	}
	if it.ID == "" {
		it.ID = uuid.New().String()
	}
	return it
}
