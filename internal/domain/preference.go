package domain

// Preference marca un genero como preferido por un perfil.
type Preference struct {
	ProfileID string `json:"profile_id" xml:"profile_id"`
	GenreID   int    `json:"genre_id" xml:"genre_id"`
}
