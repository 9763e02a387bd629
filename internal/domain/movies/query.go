package movies

// MovieQuery filters movie records. A zero query matches every record.
type MovieQuery struct {
	// Title is matched as a case-insensitive substring of the movie title.
	Title string
}

// NewMovieQuery creates a query matching titles that contain term.
func NewMovieQuery(term string) *MovieQuery {
	return &MovieQuery{Title: term}
}

// MatchesAll reports whether the query applies no filter.
func (q *MovieQuery) MatchesAll() bool {
	return q == nil || q.Title == ""
}
