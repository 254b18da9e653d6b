package server

import (
	"net/http"
	"slices"
	"strings"
)

// anyMethod keys a route mounted with [Mux.Mount]; the handler checks methods itself.
const anyMethod = "*"

// Mux is the [Router] used by the content API.
//
// Routes are kept in a table of path pattern to method to handler, so one pattern can answer
// several methods and report all of them in the Allow header. Patterns use [http.ServeMux]
// syntax, including {name} wildcards. Unmatched paths get a JSON 404.
//
// Middleware wraps the whole dispatch, unmatched paths and wrong methods included.
type Mux struct {
	mux         *http.ServeMux
	routes      map[string]map[string]http.Handler
	middlewares []Middleware
}

func NewMux() *Mux {
	m := &Mux{
		mux:    http.NewServeMux(),
		routes: make(map[string]map[string]http.Handler),
	}
	m.mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		notFound(w)
	})
	return m
}

// Use appends middleware. The first one added is the outermost.
func (m *Mux) Use(middleware ...Middleware) {
	m.middlewares = append(m.middlewares, middleware...)
}

// Handle registers handler for method on pattern. A GET route also answers HEAD.
func (m *Mux) Handle(method, pattern string, handler http.Handler) {
	m.route(pattern)[strings.ToUpper(method)] = handler
}

func (m *Mux) Get(pattern string, fn http.HandlerFunc) {
	m.Handle(http.MethodGet, pattern, fn)
}

func (m *Mux) Post(pattern string, fn http.HandlerFunc) {
	m.Handle(http.MethodPost, pattern, fn)
}

// Mount registers h for every pattern in [Handler.Routes], for all methods.
func (m *Mux) Mount(h Handler) {
	for _, pattern := range h.Routes() {
		m.route(pattern)[anyMethod] = h
	}
}

func (m *Mux) route(pattern string) map[string]http.Handler {
	methods, ok := m.routes[pattern]
	if ok {
		return methods
	}
	methods = make(map[string]http.Handler)
	m.routes[pattern] = methods
	m.mux.Handle(pattern, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.dispatch(methods, w, r)
	}))
	return methods
}

func (m *Mux) dispatch(methods map[string]http.Handler, w http.ResponseWriter, r *http.Request) {
	if h, ok := methods[r.Method]; ok {
		h.ServeHTTP(w, r)
		return
	}
	if h, ok := methods[http.MethodGet]; ok && r.Method == http.MethodHead {
		h.ServeHTTP(w, r)
		return
	}
	if h, ok := methods[anyMethod]; ok {
		h.ServeHTTP(w, r)
		return
	}
	w.Header().Set("Allow", allowed(methods))
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func allowed(methods map[string]http.Handler) string {
	names := make([]string, 0, len(methods)+1)
	for method := range methods {
		names = append(names, method)
	}
	if _, ok := methods[http.MethodGet]; ok {
		names = append(names, http.MethodHead)
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}

func (m *Mux) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var h http.Handler = m.mux
	for i := len(m.middlewares) - 1; i >= 0; i-- {
		h = m.middlewares[i](h)
	}
	h.ServeHTTP(w, r)
}
