// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"sync"
	"testing"

	"github.com/desertthunder/contenthub/internal/models"
	"github.com/desertthunder/contenthub/internal/shared"
	"github.com/desertthunder/contenthub/internal/store"
)

// MockBackend is a test double for [store.Backend].
//
// Reads are served by an in-memory [store.Fixture] unless Err is set, in which case
// every call fails with Err. Calls counts invocations per method name.
type MockBackend struct {
	Data store.FixtureData
	Err  error

	mu      sync.Mutex
	calls   map[string]int
	fixture *store.Fixture
	once    sync.Once
}

// NewMockBackend returns a backend serving data.
func NewMockBackend(data store.FixtureData) *MockBackend {
	return &MockBackend{Data: data}
}

// NewFailingBackend returns a backend whose every read fails with err.
func NewFailingBackend(err error) *MockBackend {
	if err == nil {
		err = shared.ErrBackend
	}
	return &MockBackend{Err: err}
}

func (m *MockBackend) record(name string) (*store.Fixture, error) {
	m.mu.Lock()
	if m.calls == nil {
		m.calls = map[string]int{}
	}
	m.calls[name]++
	m.mu.Unlock()

	m.once.Do(func() { m.fixture = store.NewFixture(m.Data) })
	return m.fixture, m.Err
}

// Calls returns how many times method was invoked.
func (m *MockBackend) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

func (m *MockBackend) Name() string { return "mock" }

func (m *MockBackend) Articles(ctx context.Context, q store.ArticleQuery) ([]models.ArticlePreview, error) {
	f, err := m.record("Articles")
	if err != nil {
		return nil, err
	}
	return f.Articles(ctx, q)
}

func (m *MockBackend) ArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	f, err := m.record("ArticleBySlug")
	if err != nil {
		return nil, err
	}
	return f.ArticleBySlug(ctx, slug)
}

func (m *MockBackend) ArticleSlugs(ctx context.Context) ([]string, error) {
	f, err := m.record("ArticleSlugs")
	if err != nil {
		return nil, err
	}
	return f.ArticleSlugs(ctx)
}

func (m *MockBackend) ArticleTags(ctx context.Context) ([][]string, error) {
	f, err := m.record("ArticleTags")
	if err != nil {
		return nil, err
	}
	return f.ArticleTags(ctx)
}

func (m *MockBackend) Categories(ctx context.Context, c models.Collection) ([]string, error) {
	f, err := m.record("Categories")
	if err != nil {
		return nil, err
	}
	return f.Categories(ctx, c)
}

func (m *MockBackend) Videos(ctx context.Context, q store.VideoQuery) ([]models.Video, error) {
	f, err := m.record("Videos")
	if err != nil {
		return nil, err
	}
	return f.Videos(ctx, q)
}

func (m *MockBackend) VideoByYouTubeID(ctx context.Context, id string) (*models.Video, error) {
	f, err := m.record("VideoByYouTubeID")
	if err != nil {
		return nil, err
	}
	return f.VideoByYouTubeID(ctx, id)
}

func (m *MockBackend) Products(ctx context.Context, q store.ProductQuery) ([]models.Product, error) {
	f, err := m.record("Products")
	if err != nil {
		return nil, err
	}
	return f.Products(ctx, q)
}

func (m *MockBackend) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	f, err := m.record("ProductByID")
	if err != nil {
		return nil, err
	}
	return f.ProductByID(ctx, id)
}

func (m *MockBackend) RelatedContent(ctx context.Context, q store.RelatedQuery) ([]models.RelatedContent, error) {
	f, err := m.record("RelatedContent")
	if err != nil {
		return nil, err
	}
	return f.RelatedContent(ctx, q)
}

func (m *MockBackend) Close() error { return nil }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

var _ io.ReadCloser = (*FCloser)(nil)

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
