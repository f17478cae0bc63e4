package models

// MovieDoc es una entrada del catálogo. Se escribe una sola vez desde
// cmd/featurize y después es de solo lectura: el campo iIdx es la
// posición en el catálogo y la fila/columna en la matriz de similitud.
type MovieDoc struct {
	MovieID  int      `json:"movieId" bson:"movieId"`
	IIdx     int      `json:"iIdx" bson:"iIdx"`
	Title    string   `json:"title" bson:"title"`
	Year     *int     `json:"year,omitempty" bson:"year,omitempty"`
	Genres   []string `json:"genres" bson:"genres"`
	Keywords []string `json:"keywords,omitempty" bson:"keywords,omitempty"`
	Cast     []string `json:"cast,omitempty" bson:"cast,omitempty"`
	Director string   `json:"director,omitempty" bson:"director,omitempty"`
	Overview string   `json:"overview,omitempty" bson:"overview,omitempty"`
	// Tags es la bolsa de tokens ya normalizada que se vectorizó.
	// Se guarda para poder inspeccionar qué "vio" el modelo.
	Tags      string `json:"tags,omitempty" bson:"tags,omitempty"`
	CreatedAt string `json:"createdAt" bson:"createdAt"`
	UpdatedAt string `json:"updatedAt" bson:"updatedAt"`
}

// Metadata es el enriquecimiento que viene de TMDB (o el placeholder
// si la llamada falla). Nunca forma parte del ranking.
type Metadata struct {
	MovieID     int    `json:"movieId"`
	PosterURL   string `json:"posterUrl"`
	Rating      string `json:"rating"`
	ReleaseYear string `json:"releaseYear"`
	Overview    string `json:"overview,omitempty"`
	Genres      string `json:"genres,omitempty"`
	Placeholder bool   `json:"placeholder"`
}
