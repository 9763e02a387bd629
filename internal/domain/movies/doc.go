// Package movies defines the movie record entity, the search query and the
// contracts implemented by the application and persistence layers.
package movies
