// Package web serves the movie catalog pages: the search page rendered from
// home.html and the plain-text about page.
package web
