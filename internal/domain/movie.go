package domain

// Movie is a title in the catalog. Copies holds the ids of the physical
// copies attached to the row when the movie is read back.
type Movie struct {
	UPC       string   `json:"upc"`
	Title     string   `json:"title"`
	PosterLoc string   `json:"poster_loc"`
	Copies    []string `json:"copies"`
}

// Copy is a single physical copy of a movie.
type Copy struct {
	ID     string `json:"id"`
	UPC    string `json:"upc"`
	Active bool   `json:"active"`
}
