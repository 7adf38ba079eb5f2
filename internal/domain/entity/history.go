package entity

// Acciones registradas en el log de historial. "Undo Remove" conserva la
// grafía literal con la que siempre se ha escrito el archivo.
const (
	ActionAdd        = "Add"
	ActionRemove     = "Remove"
	ActionUpdate     = "Update"
	ActionUndoRemove = "Undo Remove"
)

// TimestampLayout formato de los timestamps del log, precisión de segundos.
// Dos acciones dentro del mismo segundo comparten timestamp: NO es clave
// única, solo lo es en la práctica habitual.
const TimestampLayout = "2006-01-02 15:04:05"

// HistoryEntry es un registro inmutable del log de acciones. RestoreData
// solo viene presente en entradas Remove; vacío significa que la línea no
// traía la columna o que la acción no la necesita.
type HistoryEntry struct {
	Timestamp   string
	Action      string
	Details     string
	RestoreData string
}
