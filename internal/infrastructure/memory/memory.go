// Package memory provee implementaciones en memoria de los puertos de
// almacenamiento, usadas como dobles en la suite de tests.
package memory

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ItemStore implementa repository.ItemStore en memoria.
type ItemStore struct {
	items []entity.Item

	// FailNext fuerza el error indicado en la próxima operación de
	// escritura (simula fallas de E/S).
	FailNext error
}

// NewItemStore crea el almacén con las filas iniciales dadas.
func NewItemStore(items ...entity.Item) *ItemStore {
	return &ItemStore{items: append([]entity.Item(nil), items...)}
}

func (s *ItemStore) List() ([]entity.Item, error) {
	return append([]entity.Item(nil), s.items...), nil
}

func (s *ItemStore) Get(index int) (entity.Item, error) {
	if index < 0 || index >= len(s.items) {
		return entity.Item{}, domain.ErrInvalidIndex
	}
	return s.items[index], nil
}

func (s *ItemStore) Append(it entity.Item) error {
	if err := s.takeFailure(); err != nil {
		return err
	}
	s.items = append(s.items, it)
	return nil
}

func (s *ItemStore) UpdateAt(index int, it entity.Item) error {
	if index < 0 || index >= len(s.items) {
		return domain.ErrInvalidIndex
	}
	if err := s.takeFailure(); err != nil {
		return err
	}
	s.items[index] = it
	return nil
}

func (s *ItemStore) DeleteAt(index int) (entity.Item, error) {
	if index < 0 || index >= len(s.items) {
		return entity.Item{}, domain.ErrInvalidIndex
	}
	if err := s.takeFailure(); err != nil {
		return entity.Item{}, err
	}
	removed := s.items[index]
	s.items = append(s.items[:index], s.items[index+1:]...)
	return removed, nil
}

func (s *ItemStore) FilePath() string { return "" }

func (s *ItemStore) takeFailure() error {
	err := s.FailNext
	s.FailNext = nil
	return err
}

// HistoryLog implementa repository.HistoryLog en memoria.
type HistoryLog struct {
	entries []entity.HistoryEntry

	// Now reloj inyectable; por defecto time.Now.
	Now func() time.Time
	// FailNext fuerza el error indicado en el próximo Append.
	FailNext error
}

// NewHistoryLog crea un log vacío.
func NewHistoryLog() *HistoryLog {
	return &HistoryLog{Now: time.Now}
}

func (l *HistoryLog) Append(action, details, restoreData string) error {
	if err := l.FailNext; err != nil {
		l.FailNext = nil
		return err
	}
	l.entries = append(l.entries, entity.HistoryEntry{
		Timestamp:   l.Now().Format(entity.TimestampLayout),
		Action:      action,
		Details:     details,
		RestoreData: restoreData,
	})
	return nil
}

func (l *HistoryLog) FindFirst(timestamp, action string) (*entity.HistoryEntry, error) {
	for _, e := range l.entries {
		if e.Timestamp == timestamp && e.Action == action {
			entry := e
			return &entry, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (l *HistoryLog) List() ([]entity.HistoryEntry, error) {
	return append([]entity.HistoryEntry(nil), l.entries...), nil
}
