package dto

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// HistoryEntryResponse una entrada del log de acciones.
type HistoryEntryResponse struct {
	Timestamp   string `json:"timestamp"`
	Action      string `json:"action"`
	Details     string `json:"details"`
	RestoreData string `json:"restore_data,omitempty"`
}

// HistoryResponse log completo en orden de escritura.
type HistoryResponse struct {
	Total   int                    `json:"total"`
	Entries []HistoryEntryResponse `json:"entries"`
}

// NewHistoryResponse mapea las entradas preservando el orden del archivo.
func NewHistoryResponse(entries []entity.HistoryEntry) HistoryResponse {
	resp := HistoryResponse{Total: len(entries), Entries: make([]HistoryEntryResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, HistoryEntryResponse{
			Timestamp:   e.Timestamp,
			Action:      e.Action,
			Details:     e.Details,
			RestoreData: e.RestoreData,
		})
	}
	return resp
}
