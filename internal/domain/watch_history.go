package domain

import "time"

// WatchHistoryEntry guarda hasta donde vio un perfil cada contenido.
// TimeStopped se expresa en segundos desde el inicio.
type WatchHistoryEntry struct {
	ProfileID   string    `json:"profile_id" xml:"profile_id"`
	WatchableID string    `json:"watchable_id" xml:"watchable_id"`
	TimeStopped int       `json:"time_stopped" xml:"time_stopped"`
	UpdatedAt   time.Time `json:"updated_at" xml:"updated_at"`
}
