package domain

// Genre clasifica contenido del catalogo.
type Genre struct {
	ID   int    `json:"genre_id" xml:"genre_id"`
	Name string `json:"genre_name" xml:"genre_name"`
}

// Language es un idioma disponible para perfiles y subtitulos.
type Language struct {
	ID   int    `json:"language_id" xml:"language_id"`
	Name string `json:"name" xml:"name"`
}

// Quality es una calidad de reproduccion disponible.
type Quality struct {
	ID   int    `json:"quality_id" xml:"quality_id"`
	Name string `json:"name" xml:"name"`
}
