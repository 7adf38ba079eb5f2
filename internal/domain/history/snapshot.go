// Package history define el códec de snapshots de fila (RestoreData) del
// log de historial: un JSON plano clave/valor, parseado y validado de forma
// estricta. El contenido del log jamás se interpreta como código.
package history

import (
	"encoding/json"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// snapshot es la forma serializada de una fila removida.
type snapshot struct {
	ID             string `json:"id,omitempty"`
	Category       string `json:"category"`
	Subcategory    string `json:"subcategory"`
	Item           string `json:"item"`
	BrandType      string `json:"brand_type"`
	LengthCapacity string `json:"length_capacity"`
	Quantity       int    `json:"quantity"`
	Notes          string `json:"notes"`
}

// Claves de datos obligatorias del snapshot; "id" es opcional (logs previos
// a la asignación de IDs no lo traen).
var requiredKeys = []string{
	"category", "subcategory", "item", "brand_type", "length_capacity", "quantity", "notes",
}

// Encode serializa la fila como snapshot JSON para la columna RestoreData.
func Encode(it entity.Item) (string, error) {
	b, err := json.Marshal(snapshot{
		ID:             it.ID,
		Category:       it.Category,
		Subcategory:    it.Subcategory,
		Item:           it.Name,
		BrandType:      it.BrandType,
		LengthCapacity: it.LengthCapacity,
		Quantity:       it.Quantity,
		Notes:          it.Notes,
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode reconstruye la fila desde RestoreData validando el esquema: objeto
// JSON, sin claves desconocidas, con las siete columnas presentes y una
// cantidad entera. Cualquier desviación es ErrCorruptRestoreData.
func Decode(raw string) (entity.Item, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &keys); err != nil {
		return entity.Item{}, domain.ErrCorruptRestoreData
	}
	for k := range keys {
		if !allowedKey(k) {
			return entity.Item{}, domain.ErrCorruptRestoreData
		}
	}
	for _, k := range requiredKeys {
		if _, ok := keys[k]; !ok {
			return entity.Item{}, domain.ErrCorruptRestoreData
		}
	}

	var s snapshot
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return entity.Item{}, domain.ErrCorruptRestoreData
	}
	return entity.Item{
		ID:             s.ID,
		Category:       s.Category,
		Subcategory:    s.Subcategory,
		Name:           s.Item,
		BrandType:      s.BrandType,
		LengthCapacity: s.LengthCapacity,
		Quantity:       s.Quantity,
		Notes:          s.Notes,
	}, nil
}

func allowedKey(k string) bool {
	if k == "id" {
		return true
	}
	for _, r := range requiredKeys {
		if k == r {
			return true
		}
	}
	return false
}
