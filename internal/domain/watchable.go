package domain

import "time"

// WatchableKind distingue peliculas de series dentro del catalogo.
type WatchableKind string

const (
	KindAny    WatchableKind = ""
	KindMovie  WatchableKind = "movie"
	KindSeries WatchableKind = "series"
)

// Watchable es cualquier contenido reproducible del catalogo.
// Una pelicula no tiene season ni episode; una serie tiene ambos.
type Watchable struct {
	ID          string    `json:"watchable_id" xml:"watchable_id"`
	Title       string    `json:"title" xml:"title"`
	Description string    `json:"description,omitempty" xml:"description,omitempty"`
	GenreID     int       `json:"genre_id" xml:"genre_id"`
	Duration    int       `json:"duration" xml:"duration"`
	Season      *int      `json:"season,omitempty" xml:"season,omitempty"`
	Episode     *int      `json:"episode,omitempty" xml:"episode,omitempty"`
	CreatedAt   time.Time `json:"created_at" xml:"created_at"`
}

// Kind deriva el tipo de contenido a partir de los campos de serie.
func (w Watchable) Kind() WatchableKind {
	if w.Season == nil {
		return KindMovie
	}
	return KindSeries
}

// WatchableUpdate agrupa campos opcionales para actualizacion parcial.
type WatchableUpdate struct {
	Title       *string
	Description *string
	GenreID     *int
	Duration    *int
	Season      *int
	Episode     *int
}
