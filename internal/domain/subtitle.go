package domain

// Subtitle asocia un archivo de subtitulos a un contenido e idioma.
type Subtitle struct {
	WatchableID string `json:"watchable_id" xml:"watchable_id"`
	LanguageID  int    `json:"language_id" xml:"language_id"`
	Link        string `json:"link" xml:"link"`
}
