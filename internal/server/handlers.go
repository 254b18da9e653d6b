package server

import (
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/desertthunder/contenthub/internal/content"
	"github.com/desertthunder/contenthub/internal/filter"
	"github.com/desertthunder/contenthub/internal/models"
	"github.com/desertthunder/contenthub/internal/shared"
	"github.com/desertthunder/contenthub/internal/store"
	"github.com/desertthunder/contenthub/internal/tasks"
)

// Health answers liveness probes with the configured backend name.
type Health struct {
	backend string
}

func (h *Health) Routes() []string {
	return []string{"/healthz"}
}

func (h *Health) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "backend": h.backend})
}

// API serves the content endpoints.
type API struct {
	content  *content.Service
	loader   *tasks.Loader
	sessions *SessionStore
	logger   *log.Logger
}

func NewAPI(svc *content.Service, sessions *SessionStore, logger *log.Logger) *API {
	return &API{
		content:  svc,
		loader:   tasks.NewLoader(svc),
		sessions: sessions,
		logger:   logger,
	}
}

// Register adds every content route to r.
func (a *API) Register(r Router) {
	r.Mount(&Health{backend: a.content.Backend()})

	r.Get("/api/articles", a.listArticles)
	r.Get("/api/articles/slugs", a.articleSlugs)
	r.Get("/api/articles/tags", a.articleTags)
	r.Get("/api/articles/categories", a.articleCategories)
	r.Get("/api/articles/browse", a.browseArticles)
	r.Post("/api/articles/browse/clear", a.clearArticles)
	r.Get("/api/articles/{slug}", a.getArticle)

	r.Get("/api/videos", a.listVideos)
	r.Get("/api/videos/categories", a.videoCategories)
	r.Get("/api/videos/browse", a.browseVideos)
	r.Get("/api/videos/{youtubeID}", a.getVideo)

	r.Get("/api/products", a.listProducts)
	r.Get("/api/products/categories", a.productCategories)
	r.Get("/api/products/browse", a.browseProducts)
	r.Get("/api/products/{id}", a.getProduct)

	r.Get("/api/related", a.listRelated)
	r.Get("/api/home", a.home)
}

// NewHandler builds the router with the standard middleware stack and every route.
func NewHandler(svc *content.Service, cfg shared.ServerConfig, logger *log.Logger) *Mux {
	router := NewMux()
	router.Use(
		Recover(logger),
		RequestID(),
		RequestLogger(logger),
		CORS(cfg.CORSOrigins),
	)
	NewAPI(svc, NewSessionStore(cfg.SessionSecret), logger).Register(router)
	return router
}

func (a *API) badRequest(w http.ResponseWriter, err error) {
	writeError(w, http.StatusBadRequest, err.Error())
}

func notFound(w http.ResponseWriter) {
	writeError(w, http.StatusNotFound, "not found")
}

func (a *API) listArticles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	featured, err := boolParam(q, "featured")
	if err != nil {
		a.badRequest(w, err)
		return
	}
	limit, err := intParam(q, "limit")
	if err != nil {
		a.badRequest(w, err)
		return
	}
	audience, err := audienceParam(q, "audience")
	if err != nil {
		a.badRequest(w, err)
		return
	}

	query := store.ArticleQuery{
		Category: q.Get("category"),
		Tag:      q.Get("tag"),
		Search:   q.Get("search"),
		Featured: featured,
		Limit:    limit,
	}
	if audience == models.AudienceAll {
		writeJSON(w, http.StatusOK, a.content.Articles(r.Context(), query))
		return
	}

	query.Limit = 0
	articles := filter.Articles(a.content.Articles(r.Context(), query), filter.DefaultState().WithAudience(audience))
	writeJSON(w, http.StatusOK, store.Cap(articles, limit))
}

func (a *API) getArticle(w http.ResponseWriter, r *http.Request) {
	article, ok := a.content.ArticleBySlug(r.Context(), r.PathValue("slug"))
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, article)
}

func (a *API) articleSlugs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.content.ArticleSlugs(r.Context()))
}

func (a *API) articleTags(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.content.ArticleTags(r.Context()))
}

func (a *API) articleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.content.ArticleCategories(r.Context()))
}

func (a *API) browseArticles(w http.ResponseWriter, r *http.Request) {
	state := loadState(a.sessions, r, articlesKey, filter.DefaultState())

	q := r.URL.Query()
	if q.Has("q") {
		state = state.WithSearch(q.Get("q"))
	}
	if q.Has("category") {
		state = state.WithCategory(q.Get("category"))
	}
	if q.Has("tag") {
		state = state.WithTag(q.Get("tag"))
	}
	if q.Has("audience") {
		audience, err := audienceParam(q, "audience")
		if err != nil {
			a.badRequest(w, err)
			return
		}
		state = state.WithAudience(audience)
	}

	a.save(w, r, articlesKey, state.Normalize())
	writeJSON(w, http.StatusOK, a.loader.LoadArticles(r.Context(), state))
}

func (a *API) clearArticles(w http.ResponseWriter, r *http.Request) {
	state := loadState(a.sessions, r, articlesKey, filter.DefaultState()).Clear()
	a.save(w, r, articlesKey, state)
	writeJSON(w, http.StatusOK, a.loader.LoadArticles(r.Context(), state))
}

func (a *API) listVideos(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	level, err := audienceParam(q, "level")
	if err != nil {
		a.badRequest(w, err)
		return
	}
	limit, err := intParam(q, "limit")
	if err != nil {
		a.badRequest(w, err)
		return
	}

	writeJSON(w, http.StatusOK, a.content.Videos(r.Context(), store.VideoQuery{
		Level:    level,
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Limit:    limit,
	}))
}

func (a *API) getVideo(w http.ResponseWriter, r *http.Request) {
	video, ok := a.content.VideoByYouTubeID(r.Context(), r.PathValue("youtubeID"))
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, video)
}

func (a *API) videoCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.content.VideoCategories(r.Context()))
}

func (a *API) browseVideos(w http.ResponseWriter, r *http.Request) {
	state := loadState(a.sessions, r, videosKey, filter.DefaultVideoState())

	q := r.URL.Query()
	if q.Has("q") {
		state.SearchQuery = q.Get("q")
	}
	if q.Has("audience") {
		audience, err := audienceParam(q, "audience")
		if err != nil {
			a.badRequest(w, err)
			return
		}
		state.Audience = audience
	}

	a.save(w, r, videosKey, state)
	writeJSON(w, http.StatusOK, a.loader.LoadVideos(r.Context(), state))
}

func (a *API) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	affiliate, err := boolParam(q, "affiliate")
	if err != nil {
		a.badRequest(w, err)
		return
	}
	limit, err := intParam(q, "limit")
	if err != nil {
		a.badRequest(w, err)
		return
	}
	group, err := filter.ParseProductGroup(q.Get("group"))
	if err != nil {
		a.badRequest(w, err)
		return
	}

	query := store.ProductQuery{
		Category:    q.Get("category"),
		Search:      q.Get("search"),
		IsAffiliate: affiliate,
		Limit:       limit,
	}
	if group == filter.GroupAll {
		writeJSON(w, http.StatusOK, a.content.Products(r.Context(), query))
		return
	}

	query.Limit = 0
	products := filter.Products(a.content.Products(r.Context(), query), filter.ProductState{Group: group})
	writeJSON(w, http.StatusOK, store.Cap(products, limit))
}

func (a *API) getProduct(w http.ResponseWriter, r *http.Request) {
	product, ok := a.content.ProductByID(r.Context(), r.PathValue("id"))
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (a *API) productCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.content.ProductCategories(r.Context()))
}

func (a *API) browseProducts(w http.ResponseWriter, r *http.Request) {
	state := loadState(a.sessions, r, productsKey, filter.ProductState{Group: filter.GroupAll})

	q := r.URL.Query()
	if q.Has("q") {
		state.SearchQuery = q.Get("q")
	}
	if q.Has("group") {
		group, err := filter.ParseProductGroup(q.Get("group"))
		if err != nil {
			a.badRequest(w, err)
			return
		}
		state.Group = group
	}

	a.save(w, r, productsKey, state)
	writeJSON(w, http.StatusOK, a.loader.LoadProducts(r.Context(), state))
}

func (a *API) listRelated(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	contentType, err := contentTypeParam(q, "type")
	if err != nil {
		a.badRequest(w, err)
		return
	}
	limit, err := intParam(q, "limit")
	if err != nil {
		a.badRequest(w, err)
		return
	}

	writeJSON(w, http.StatusOK, a.content.RelatedContent(r.Context(), store.RelatedQuery{
		ContentType: contentType,
		Limit:       limit,
	}))
}

func (a *API) home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.loader.LoadHome(r.Context()))
}

// save stores a browse selection; a failed cookie write only costs persistence.
func (a *API) save(w http.ResponseWriter, r *http.Request, key string, v any) {
	if err := saveState(a.sessions, w, r, key, v); err != nil {
		a.logger.Warn("failed to save browse state", "key", key, "err", err)
	}
}
