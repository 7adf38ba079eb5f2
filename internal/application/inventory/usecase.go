package inventory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/search"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/history"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Service orquesta el almacén tabular y el log de historial para las
// operaciones CRUD del inventario.
//
// No hay control de concurrencia entre procesos: dos procesos que mutan
// la tabla a la vez sufren lost-update (gana el último en escribir). Dentro
// del proceso, un mutex global alrededor de cada operación mutadora evita
// la corrupción por intercalado sin cambiar la semántica observable de cada
// request individual.
type Service struct {
	mu    sync.Mutex
	store repository.ItemStore
	log   repository.HistoryLog
}

// NewService construye el servicio de inventario.
func NewService(store repository.ItemStore, log repository.HistoryLog) *Service {
	return &Service{store: store, log: log}
}

// AddInput campos para crear una fila de inventario.
type AddInput struct {
	Category       string
	Subcategory    string
	Name           string
	BrandType      string
	LengthCapacity string
	Quantity       int
	Notes          string
}

// Add agrega la fila al final de la tabla, le asigna su ID estable y
// registra la acción en el historial.
func (s *Service) Add(ctx context.Context, in AddInput) (entity.Item, error) {
	if in.Quantity < 0 {
		return entity.Item{}, domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	it := entity.Item{
		ID:             uuid.New().String(),
		Category:       in.Category,
		Subcategory:    in.Subcategory,
		Name:           in.Name,
		BrandType:      in.BrandType,
		LengthCapacity: in.LengthCapacity,
		Quantity:       in.Quantity,
		Notes:          in.Notes,
	}
	if err := s.store.Append(it); err != nil {
		return entity.Item{}, err
	}
	if err := s.log.Append(entity.ActionAdd, "Added item: "+it.Describe(), ""); err != nil {
		return it, domain.ErrPartialCommit
	}
	return it, nil
}

// Remove elimina la fila del índice dado. El snapshot de la fila se captura
// ANTES de borrarla y se guarda en la columna RestoreData de la entrada
// Remove; es lo único que permite deshacer después.
func (s *Service) Remove(ctx context.Context, index int) (entity.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, err := s.store.Get(index)
	if err != nil {
		return entity.Item{}, err
	}
	snap, err := history.Encode(it)
	if err != nil {
		return entity.Item{}, err
	}
	if _, err := s.store.DeleteAt(index); err != nil {
		return entity.Item{}, err
	}
	if err := s.log.Append(entity.ActionRemove, "Removed item: "+it.Describe(), snap); err != nil {
		// La tabla ya cambió pero el log no registró la acción: la fila
		// eliminada quedó sin snapshot y no podrá restaurarse.
		return it, domain.ErrPartialCommit
	}
	return it, nil
}

// UpdateInput campos modificables de una fila existente: solo cantidad y
// notas, el resto se fija al crear.
type UpdateInput struct {
	Quantity int
	Notes    string
}

// Update modifica la fila del índice dado y registra el antes y el después.
func (s *Service) Update(ctx context.Context, index int, in UpdateInput) (entity.Item, error) {
	if in.Quantity < 0 {
		return entity.Item{}, domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	before, err := s.store.Get(index)
	if err != nil {
		return entity.Item{}, err
	}
	after := before
	after.Quantity = in.Quantity
	after.Notes = in.Notes

	if err := s.store.UpdateAt(index, after); err != nil {
		return entity.Item{}, err
	}
	details := fmt.Sprintf("Before: %s, After: %s", before.Describe(), after.Describe())
	if err := s.log.Append(entity.ActionUpdate, details, ""); err != nil {
		return after, domain.ErrPartialCommit
	}
	return after, nil
}

// List devuelve todas las filas en orden posicional.
func (s *Service) List(ctx context.Context) ([]entity.Item, error) {
	return s.store.List()
}

// Search filtra filas cuya concatenación de campos (todos convertidos a
// texto) contiene el término, sin distinguir mayúsculas. El match es a
// nivel de fila completa; no existe búsqueda por campo.
func (s *Service) Search(ctx context.Context, query string) ([]entity.Item, error) {
	items, err := s.store.List()
	if err != nil {
		return nil, err
	}
	if query == "" {
		return items, nil
	}

	pattern := search.New(language.Und, search.Loose).CompileString(query)
	var matched []entity.Item
	for _, it := range items {
		text := strings.Join(it.Fields(), " ")
		if start, _ := pattern.IndexString(text); start != -1 {
			matched = append(matched, it)
		}
	}
	return matched, nil
}
