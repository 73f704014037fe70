package domain

import "time"

// Profile es un perfil de visualizacion que pertenece a un User.
// Se elimina en cascada junto con la cuenta.
type Profile struct {
	ID         string    `json:"profile_id" xml:"profile_id"`
	UserID     string    `json:"user_id" xml:"user_id"`
	Name       string    `json:"profile_name" xml:"profile_name"`
	PhotoLink  string    `json:"profile_photo_link,omitempty" xml:"profile_photo_link,omitempty"`
	Age        int       `json:"age" xml:"age"`
	LanguageID int       `json:"language_id" xml:"language_id"`
	CreatedAt  time.Time `json:"created_at" xml:"created_at"`
}

// ProfileUpdate agrupa campos opcionales para actualizacion parcial.
type ProfileUpdate struct {
	Name       *string
	PhotoLink  *string
	Age        *int
	LanguageID *int
}
