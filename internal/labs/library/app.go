// Package library is the deep-linking lesson: the librarian fulfills a
// book request, pushes /book/{slug} into browser history, and serves
// the same fragment when the slug is visited directly.
package library

import (
	"html"
	"net/http"
	"regexp"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/hxlabs/courseware/internal/htmx"
	"github.com/hxlabs/courseware/internal/web/render"
)

// Book is the most recently fulfilled request.
type Book struct {
	Title  string
	Author string
	Slug   string
}

// App remembers the last fulfilled book so pushed URLs resolve.
type App struct {
	mu   sync.Mutex
	last Book
}

func New() *App { return &App{} }

var nonWordChars = regexp.MustCompile(`[^\w\s-]`)
var whitespace = regexp.MustCompile(`\s+`)

func slugify(text string) string {
	text = strings.ToLower(text)
	text = nonWordChars.ReplaceAllString(text, "")
	return whitespace.ReplaceAllString(text, "-")
}

// Routes mounts the library endpoints.
func (a *App) Routes(r chi.Router) {
	r.Get("/", a.handleIndex)
	r.Post("/request-book", a.handleRequestBook)
	r.Get("/book/{slug}", a.handleBookBySlug)
}

func bookFragment(title, author, slug string) string {
	return `<div id="librarian-desk-response" data-testid="librarian-desk-response-final" class="mt-4 p-4 bg-green-900/50 border border-green-700 rounded-md">
  <h4 class="font-bold text-lg text-green-400">Request Fulfilled!</h4>
  <p class="text-gray-300 mt-2">The book <strong class="text-white">` + html.EscapeString(title) + `</strong> by <strong class="text-white">` + html.EscapeString(author) + `</strong> is now available for you.</p>
  <p class="text-xs text-gray-400 mt-3">Note: The browser URL has been updated to <code class="bg-gray-800 text-sm p-1 rounded">/book/` + html.EscapeString(slug) + `</code> for bookmarking.</p>
</div>`
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := `<h1 class="text-2xl font-bold">The Lending Library</h1>
<form hx-post="request-book" hx-target="#librarian-desk-response" hx-swap="outerHTML" class="mt-4 space-y-2">
  <input type="text" name="title" placeholder="Book title" required>
  <input type="text" name="author" placeholder="Author" required>
  <button type="submit">Ask the librarian</button>
</form>
<div id="librarian-desk-response" class="mt-4 text-slate-400">The librarian is waiting for your request.</div>`
	render.Page(w, r, "The Lending Library", page)
}

func (a *App) handleRequestBook(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render.FragmentStatus(w, http.StatusUnprocessableEntity, `<p class="text-red-400">Could not read the request slip.</p>`)
		return
	}
	title := strings.TrimSpace(r.PostFormValue("title"))
	author := strings.TrimSpace(r.PostFormValue("author"))
	if title == "" || author == "" {
		render.FragmentStatus(w, http.StatusUnprocessableEntity, `<p class="text-red-400">Both a title and an author are required.</p>`)
		return
	}

	slug := slugify(title)
	a.mu.Lock()
	a.last = Book{Title: title, Author: author, Slug: slug}
	a.mu.Unlock()

	// Deep linking: the fulfilled request becomes a bookmarkable URL.
	htmx.PushURL(w, "/labs/library/book/"+slug)
	render.Fragment(w, bookFragment(title, author, slug))
}

func (a *App) handleBookBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	a.mu.Lock()
	title, author := a.last.Title, a.last.Author
	a.mu.Unlock()
	if title == "" {
		title, author = "Unknown Title", "Unknown Author"
	}

	render.Page(w, r, "The Lending Library", bookFragment(title, author, slug))
}
