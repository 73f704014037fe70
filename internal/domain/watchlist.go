package domain

import "time"

// WatchlistEntry es un contenido que un perfil guardo para ver despues.
type WatchlistEntry struct {
	ProfileID   string    `json:"profile_id" xml:"profile_id"`
	WatchableID string    `json:"watchable_id" xml:"watchable_id"`
	AddedAt     time.Time `json:"added_at" xml:"added_at"`
}
