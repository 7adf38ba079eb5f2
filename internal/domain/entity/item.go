package entity

import "strconv"

// Columnas de la tabla de inventario, en el orden exacto del archivo.
var Columns = []string{
	"Category", "Subcategory", "Item", "Brand/Type", "Length/Capacity", "Quantity", "Notes",
}

// Item representa una fila del inventario. La identidad operativa sigue
// siendo posicional (índice en la tabla), pero cada fila recibe un ID
// sintético estable al crearse, que viaja en snapshots y respuestas.
type Item struct {
	ID             string
	Category       string
	Subcategory    string
	Name           string // columna "Item"
	BrandType      string // columna "Brand/Type"
	LengthCapacity string // columna "Length/Capacity"
	Quantity       int
	Notes          string
}

// Fields devuelve los valores de las siete columnas de datos, en el orden
// de Columns. El ID no forma parte de la fila visible.
func (i Item) Fields() []string {
	return []string{
		i.Category,
		i.Subcategory,
		i.Name,
		i.BrandType,
		i.LengthCapacity,
		strconv.Itoa(i.Quantity),
		i.Notes,
	}
}

// Describe arma la descripción legible que se escribe en el log de historial.
func (i Item) Describe() string {
	s := ""
	for idx, col := range Columns {
		if idx > 0 {
			s += ", "
		}
		s += col + "=" + i.Fields()[idx]
	}
	return s
}
