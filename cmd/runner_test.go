package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/contenthub/internal/models"
	"github.com/desertthunder/contenthub/internal/shared"
	"github.com/desertthunder/contenthub/internal/store"
	"github.com/desertthunder/contenthub/internal/tasks"
	tu "github.com/desertthunder/contenthub/internal/testing"
)

// failAfter accepts n writes and fails every write after that.
type failAfter struct {
	n int
	w bytes.Buffer
}

func (f *failAfter) Write(p []byte) (int, error) {
	if f.n <= 0 {
		return 0, errors.New("write failed")
	}
	f.n--
	return f.w.Write(p)
}

func newTestRunner(backend store.Backend) (*Runner, *bytes.Buffer) {
	output := &bytes.Buffer{}
	runner := NewRunner(RunnerOpts{
		Config:  shared.DefaultConfig(),
		Backend: backend,
		Logger:  shared.NewLogger(io.Discard),
		Output:  output,
	})
	return runner, output
}

func run(t *testing.T, r *Runner, args ...string) error {
	t.Helper()
	return newApp(r).Run(context.Background(), append([]string{"contenthub"}, args...))
}

func mustRun(t *testing.T, r *Runner, args ...string) {
	t.Helper()
	if err := run(t, r, args...); err != nil {
		t.Fatalf("%v: unexpected error: %v", args, err)
	}
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("failed to decode %s: %v", raw, err)
	}
	return v
}

func articleSlugs(items []models.ArticlePreview) []string {
	out := make([]string, len(items))
	for i, a := range items {
		out[i] = a.Slug
	}
	return out
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			backend := store.NewEmpty()

			runner := NewRunner(RunnerOpts{
				Config:  config,
				Backend: backend,
				Logger:  logger,
				Output:  output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.backend != backend {
				t.Error("expected backend to be set")
			}
		})

		t.Run("with nil options uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
			if runner.open == nil {
				t.Error("expected default backend opener")
			}
			if runner.config != nil {
				t.Error("config should be loaded by Before, not NewRunner")
			}
		})
	})

	t.Run("service", func(t *testing.T) {
		t.Run("opens the backend once", func(t *testing.T) {
			calls := 0
			runner := NewRunner(RunnerOpts{
				Logger: shared.NewLogger(io.Discard),
				Opener: func(*shared.Config, *log.Logger) (store.Backend, error) {
					calls++
					return store.NewEmpty(), nil
				},
			})

			for range 3 {
				if _, err := runner.service(); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}
			if calls != 1 {
				t.Errorf("expected opener to run once, ran %d times", calls)
			}
			if runner.config == nil {
				t.Error("expected default config when none was loaded")
			}
		})

		t.Run("propagates opener errors", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{
				Logger: shared.NewLogger(io.Discard),
				Opener: func(*shared.Config, *log.Logger) (store.Backend, error) {
					return nil, shared.ErrServiceUnavailable
				},
			})

			if _, err := runner.service(); !errors.Is(err, shared.ErrServiceUnavailable) {
				t.Errorf("expected ErrServiceUnavailable, got %v", err)
			}
			if runner.backend != nil {
				t.Error("failed open should not set a backend")
			}
		})

		t.Run("SetLogger rebuilds the query layer", func(t *testing.T) {
			runner, _ := newTestRunner(store.NewEmpty())
			first, _ := runner.service()

			runner.SetLogger(shared.NewLogger(io.Discard))
			second, _ := runner.service()
			if first == second {
				t.Error("expected a new service after SetLogger")
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]string{"key": "value"}, true); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("writes compact JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]string{"key": "value"}, false); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			expected := `{"key":"value"}` + "\n"
			if output.String() != expected {
				t.Errorf("expected %q, got %q", expected, output.String())
			}
		})

		t.Run("handles marshal error with non-serializable data", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

			err := runner.writeJSON(make(chan int), false)
			if err == nil || !strings.Contains(err.Error(), "failed to marshal JSON") {
				t.Errorf("expected marshal error, got %v", err)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)
			if err == nil || !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})

		t.Run("handles newline write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &failAfter{n: 1}})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)
			if err == nil || !strings.Contains(err.Error(), "failed to write newline") {
				t.Errorf("expected newline error, got %v", err)
			}
		})
	})

	t.Run("writeLines", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writeLines([]string{"a", "b"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.String() != "a\nb\n" {
			t.Errorf("got %q", output.String())
		}

		runner = NewRunner(RunnerOpts{Output: &tu.FWriter{}})
		if err := runner.writeLines([]string{"a"}); err == nil {
			t.Error("expected write error")
		}
	})
}

func TestBefore(t *testing.T) {
	t.Run("missing config file uses defaults", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Logger: shared.NewLogger(io.Discard), Output: &bytes.Buffer{}, Backend: store.NewEmpty()})
		path := filepath.Join(t.TempDir(), "absent.toml")

		if err := run(t, runner, "--config", path, "related", "list"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if runner.config == nil || runner.config.Server.Port != shared.DefaultConfig().Server.Port {
			t.Errorf("expected default config, got %+v", runner.config)
		}
	})

	t.Run("loads the named config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("[server]\nport = 9090\n"), 0644); err != nil {
			t.Fatal(err)
		}
		runner := NewRunner(RunnerOpts{Logger: shared.NewLogger(io.Discard), Output: &bytes.Buffer{}, Backend: store.NewEmpty()})

		mustRun(t, runner, "--config", path, "related", "list")
		if runner.config.Server.Port != 9090 {
			t.Errorf("expected port 9090, got %d", runner.config.Server.Port)
		}
	})

	t.Run("malformed config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("[server\nport = "), 0644); err != nil {
			t.Fatal(err)
		}
		runner := NewRunner(RunnerOpts{Logger: shared.NewLogger(io.Discard), Output: &bytes.Buffer{}, Backend: store.NewEmpty()})

		if err := run(t, runner, "--config", path, "related", "list"); !errors.Is(err, shared.ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("log level flag", func(t *testing.T) {
		runner, _ := newTestRunner(store.NewEmpty())
		mustRun(t, runner, "--log-level", "debug", "related", "list")
		if runner.logger.GetLevel() != log.DebugLevel {
			t.Errorf("expected debug level, got %v", runner.logger.GetLevel())
		}

		runner, _ = newTestRunner(store.NewEmpty())
		if err := run(t, runner, "--log-level", "loud", "related", "list"); err == nil {
			t.Error("expected error for unknown log level")
		}
	})
}

func TestOpenBackend(t *testing.T) {
	logger := shared.NewLogger(io.Discard)
	config := func(driver string) *shared.Config {
		c := shared.DefaultConfig()
		c.Store.Driver = driver
		return c
	}

	t.Run("none", func(t *testing.T) {
		b, err := OpenBackend(config(shared.DriverNone), logger)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Name() != shared.DriverNone {
			t.Errorf("expected empty backend, got %s", b.Name())
		}
	})

	t.Run("missing credentials fall back to empty", func(t *testing.T) {
		for _, driver := range []string{shared.DriverSupabase, shared.DriverPostgres} {
			c := config(driver)
			c.Supabase.URL, c.Supabase.AnonKey, c.Postgres.DSN = "", "", ""

			b, err := OpenBackend(c, logger)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", driver, err)
			}
			if b.Name() != shared.DriverNone {
				t.Errorf("%s: expected empty backend, got %s", driver, b.Name())
			}
		}
	})

	t.Run("supabase with credentials", func(t *testing.T) {
		c := config(shared.DriverSupabase)
		c.Supabase.URL = "https://example.supabase.co"
		c.Supabase.AnonKey = "anon"

		b, err := OpenBackend(c, logger)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Name() != shared.DriverSupabase {
			t.Errorf("expected supabase backend, got %s", b.Name())
		}
	})

	t.Run("sqlite", func(t *testing.T) {
		c := config(shared.DriverSQLite)
		c.Database.Path = ":memory:"

		b, err := OpenBackend(c, logger)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer b.Close()
		if b.Name() != shared.DriverSQLite {
			t.Errorf("expected sqlite backend, got %s", b.Name())
		}
	})

	t.Run("fixture", func(t *testing.T) {
		c := config(shared.DriverFixture)
		c.Fixture.Path = filepath.Join("..", "internal", "store", "testdata", "content.yaml")

		b, err := OpenBackend(c, logger)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Name() != shared.DriverFixture {
			t.Errorf("expected fixture backend, got %s", b.Name())
		}
	})

	t.Run("missing fixture file", func(t *testing.T) {
		c := config(shared.DriverFixture)
		c.Fixture.Path = filepath.Join(t.TempDir(), "absent.yaml")

		b, err := OpenBackend(c, logger)
		if err == nil {
			t.Fatal("expected error for missing fixture")
		}
		if b != nil {
			t.Error("expected nil backend on failure")
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		if _, err := OpenBackend(config("mongo"), logger); !errors.Is(err, shared.ErrUnknownDriver) {
			t.Errorf("expected ErrUnknownDriver, got %v", err)
		}
	})
}

func TestArticlesCommands(t *testing.T) {
	newRunner := func() (*Runner, *bytes.Buffer) {
		return newTestRunner(tu.NewMockBackend(tu.SampleData()))
	}

	t.Run("list as text table", func(t *testing.T) {
		runner, output := newRunner()
		mustRun(t, runner, "articles", "list")

		lines := strings.Split(strings.TrimSpace(output.String()), "\n")
		if len(lines) != 7 {
			t.Fatalf("expected header and 6 rows, got %d lines:\n%s", len(lines), output.String())
		}
		if !strings.HasPrefix(lines[0], "SLUG") {
			t.Errorf("expected header row, got %q", lines[0])
		}
		if !strings.HasPrefix(lines[1], "intro-to-ai") {
			t.Errorf("expected newest article first, got %q", lines[1])
		}
	})

	t.Run("list as JSON", func(t *testing.T) {
		runner, output := newRunner()
		mustRun(t, runner, "articles", "list", "--json")

		got := decode[[]models.ArticlePreview](t, output.Bytes())
		if len(got) != 6 {
			t.Errorf("expected 6 articles, got %d", len(got))
		}
	})

	t.Run("list as CSV", func(t *testing.T) {
		runner, output := newRunner()
		mustRun(t, runner, "articles", "list", "--format", "csv", "--limit", "2")

		lines := strings.Split(strings.TrimSpace(output.String()), "\n")
		if len(lines) != 3 {
			t.Errorf("expected header and 2 rows, got %q", output.String())
		}
	})

	t.Run("query filters", func(t *testing.T) {
		tests := []struct {
			name string
			args []string
			want []string
		}{
			{"tag", []string{"--tag", "AI"}, []string{"intro-to-ai", "ai-at-work"}},
			{"category", []string{"--category", "college"}, []string{"javascript-basics", "typescript-tips"}},
			{"search", []string{"--search", "  CLOUD "}, []string{"cloud-careers"}},
			{"featured", []string{"--featured"}, []string{"intro-to-ai", "ai-at-work", "cloud-careers"}},
			{"not featured", []string{"--featured=false"}, []string{"javascript-basics", "coding-clubs", "typescript-tips"}},
			{"limit", []string{"--limit", "1"}, []string{"intro-to-ai"}},
			{"audience", []string{"--audience", "it-pros"}, []string{"ai-at-work", "cloud-careers"}},
			{"audience then limit", []string{"--audience", "teens", "--limit", "2"}, []string{"intro-to-ai", "javascript-basics"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				runner, output := newRunner()
				mustRun(t, runner, append([]string{"articles", "list", "--json"}, tt.args...)...)

				got := articleSlugs(decode[[]models.ArticlePreview](t, output.Bytes()))
				if strings.Join(got, ",") != strings.Join(tt.want, ",") {
					t.Errorf("expected %v, got %v", tt.want, got)
				}
			})
		}
	})

	t.Run("invalid flags", func(t *testing.T) {
		tests := []struct {
			name string
			args []string
		}{
			{"negative limit", []string{"--limit=-1"}},
			{"unknown audience", []string{"--audience", "grown-ups"}},
			{"unknown format", []string{"--format", "yaml"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				backend := tu.NewMockBackend(tu.SampleData())
				runner, _ := newTestRunner(backend)

				err := run(t, runner, append([]string{"articles", "list"}, tt.args...)...)
				if !errors.Is(err, shared.ErrInvalidFlag) {
					t.Errorf("expected ErrInvalidFlag, got %v", err)
				}
				if backend.Calls("Articles") != 0 {
					t.Error("expected no store read for invalid flags")
				}
			})
		}
	})

	t.Run("backend failure lists nothing", func(t *testing.T) {
		runner, output := newTestRunner(tu.NewFailingBackend(nil))
		mustRun(t, runner, "articles", "list", "--json")

		if strings.TrimSpace(output.String()) != "[]" {
			t.Errorf("expected empty list, got %q", output.String())
		}
	})

	t.Run("get summary", func(t *testing.T) {
		runner, output := newRunner()
		mustRun(t, runner, "articles", "get", "intro-to-ai")

		for _, want := range []string{"Intro to AI", "Slug:      intro-to-ai", "Tags:      AI, Beginners", "Featured:  yes", "Machine learning for beginners"} {
			if !strings.Contains(output.String(), want) {
				t.Errorf("expected %q in output:\n%s", want, output.String())
			}
		}
	})

	t.Run("get markdown", func(t *testing.T) {
		runner, output := newRunner()
		mustRun(t, runner, "articles", "get", "--markdown", "intro-to-ai")

		if !strings.HasPrefix(output.String(), "# Intro to AI") {
			t.Errorf("expected markdown heading, got %q", output.String())
		}
		if !strings.Contains(output.String(), "*intro-to-ai*") && !strings.Contains(output.String(), "_intro-to-ai_") {
			t.Errorf("expected body converted to markdown, got %q", output.String())
		}
	})

	t.Run("get JSON", func(t *testing.T) {
		runner, output := newRunner()
		mustRun(t, runner, "articles", "get", "--json", "intro-to-ai")

		got := decode[models.Article](t, output.Bytes())
		if got.Slug != "intro-to-ai" || got.Content == "" {
			t.Errorf("unexpected article %+v", got)
		}
	})

	t.Run("get missing", func(t *testing.T) {
		runner, _ := newRunner()
		if err := run(t, runner, "articles", "get", "nope"); !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("get without slug", func(t *testing.T) {
		runner, _ := newRunner()
		if err := run(t, runner, "articles", "get"); !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})

	t.Run("facets", func(t *testing.T) {
		runner, output := newRunner()
		mustRun(t, runner, "articles", "tags")
		lines := strings.Split(strings.TrimSpace(output.String()), "\n")
		if lines[0] != "AI" || len(lines) != 9 {
			t.Errorf("unexpected tags %v", lines)
		}

		runner, output = newRunner()
		mustRun(t, runner, "articles", "categories", "--json")
		categories := decode[[]string](t, output.Bytes())
		if len(categories) != 5 {
			t.Errorf("expected 5 categories, got %v", categories)
		}

		runner, output = newRunner()
		mustRun(t, runner, "articles", "slugs")
		if !strings.Contains(output.String(), "typescript-tips\n") {
			t.Errorf("expected slugs, got %q", output.String())
		}
	})
}

func TestVideoProductRelatedCommands(t *testing.T) {
	newRunner := func() (*Runner, *bytes.Buffer) {
		return newTestRunner(tu.NewMockBackend(tu.SampleData()))
	}

	t.Run("videos by level", func(t *testing.T) {
		runner, output := newRunner()
		mustRun(t, runner, "videos", "list", "--json", "--level", "school")

		got := decode[[]models.Video](t, output.Bytes())
		if len(got) != 1 || got[0].YouTubeID != "yt-python" {
			t.Errorf("unexpected videos %+v", got)
		}
	})

	t.Run("videos by audience", func(t *testing.T) {
		runner, output := newRunner()
		mustRun(t, runner, "videos", "list", "--json", "--audience", "it-pros")

		got := decode[[]models.Video](t, output.Bytes())
		if len(got) != 1 || got[0].YouTubeID != "yt-linux" {
			t.Errorf("unexpected videos %+v", got)
		}
	})

	t.Run("video get", func(t *testing.T) {
		runner, output := newRunner()
		mustRun(t, runner, "videos", "get", "yt-games")
		if !strings.Contains(output.String(), "Game Design") {
			t.Errorf("expected video row, got %q", output.String())
		}

		runner, _ = newRunner()
		if err := run(t, runner, "videos", "get", "missing"); !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("products by group", func(t *testing.T) {
		runner, output := newRunner()
		mustRun(t, runner, "products", "list", "--json", "--group", "apps")

		got := decode[[]models.Product](t, output.Bytes())
		if len(got) != 2 || got[0].ID != "p1" || got[1].ID != "p2" {
			t.Errorf("unexpected products %+v", got)
		}
	})

	t.Run("affiliate products", func(t *testing.T) {
		runner, output := newRunner()
		mustRun(t, runner, "products", "list", "--json", "--affiliate")

		got := decode[[]models.Product](t, output.Bytes())
		if len(got) != 1 || got[0].ID != "p5" {
			t.Errorf("unexpected products %+v", got)
		}
	})

	t.Run("unknown product group", func(t *testing.T) {
		runner, _ := newRunner()
		if err := run(t, runner, "products", "list", "--group", "games"); !errors.Is(err, shared.ErrInvalidFlag) {
			t.Errorf("expected ErrInvalidFlag, got %v", err)
		}
	})

	t.Run("product get", func(t *testing.T) {
		runner, output := newRunner()
		mustRun(t, runner, "products", "get", "--json", "p3")

		got := decode[models.Product](t, output.Bytes())
		if got.Title != "Prompt Pack" {
			t.Errorf("unexpected product %+v", got)
		}
	})

	t.Run("related by type", func(t *testing.T) {
		runner, output := newRunner()
		mustRun(t, runner, "related", "list", "--json", "--type", "external", "--limit", "2")

		got := decode[[]models.RelatedContent](t, output.Bytes())
		if len(got) != 2 || got[0].ID != "r3" || got[1].ID != "r5" {
			t.Errorf("unexpected related links %+v", got)
		}
	})

	t.Run("unknown related type", func(t *testing.T) {
		runner, _ := newRunner()
		if err := run(t, runner, "related", "list", "--type", "podcast"); !errors.Is(err, shared.ErrInvalidFlag) {
			t.Errorf("expected ErrInvalidFlag, got %v", err)
		}
	})
}

func TestExportCommand(t *testing.T) {
	t.Run("writes every collection and a manifest", func(t *testing.T) {
		runner, output := newTestRunner(tu.NewMockBackend(tu.SampleData()))
		dir := filepath.Join(t.TempDir(), "out")

		mustRun(t, runner, "export", "--format", "csv", "--output", dir, "--rate", "100", "--json")

		result := decode[tasks.ExportResult](t, output.Bytes())
		if result.Succeeded != 4 || result.Failed != 0 {
			t.Errorf("expected 4 successful collections, got %+v", result)
		}
		tu.AssertFileExists(t, filepath.Join(dir, tasks.ManifestFile))
		tu.AssertFileExists(t, filepath.Join(dir, "articles.csv"))
	})

	t.Run("prints a summary", func(t *testing.T) {
		runner, output := newTestRunner(tu.NewMockBackend(tu.SampleData()))
		dir := filepath.Join(t.TempDir(), "out")

		mustRun(t, runner, "export", "--format", "txt", "--output", dir, "--rate", "100")

		for _, want := range []string{"Export Complete!", "4 succeeded, 0 failed", "✓ articles"} {
			if !strings.Contains(output.String(), want) {
				t.Errorf("expected %q in output:\n%s", want, output.String())
			}
		}
	})

	t.Run("invalid flags", func(t *testing.T) {
		for _, args := range [][]string{
			{"--format", "yaml"},
			{"--workers=-1"},
			{"--rate=-2"},
		} {
			runner, _ := newTestRunner(tu.NewMockBackend(tu.SampleData()))
			if err := run(t, runner, append([]string{"export", "--output", t.TempDir()}, args...)...); !errors.Is(err, shared.ErrInvalidFlag) {
				t.Errorf("%v: expected ErrInvalidFlag, got %v", args, err)
			}
		}
	})
}

func TestSetupCommands(t *testing.T) {
	t.Run("config", func(t *testing.T) {
		runner, output := newTestRunner(nil)
		path := filepath.Join(t.TempDir(), "config.toml")

		mustRun(t, runner, "--config", path, "setup", "config")
		tu.AssertFileExists(t, path)
		if !strings.Contains(output.String(), path) {
			t.Errorf("expected path in output, got %q", output.String())
		}

		if err := run(t, runner, "--config", path, "setup", "config"); err == nil {
			t.Error("expected error when the config file exists")
		}
	})

	t.Run("database with seed", func(t *testing.T) {
		config := shared.DefaultConfig()
		config.Database.Path = filepath.Join(t.TempDir(), "content.db")
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Config: config, Logger: shared.NewLogger(io.Discard), Output: output})

		mustRun(t, runner, "setup", "database", "--seed")
		tu.AssertFileExists(t, config.Database.Path)
		if !strings.Contains(output.String(), "Demo content loaded") {
			t.Errorf("expected seed confirmation, got %q", output.String())
		}

		config.Store.Driver = shared.DriverSQLite
		output.Reset()
		mustRun(t, runner, "articles", "slugs")
		if strings.TrimSpace(output.String()) == "" {
			t.Error("expected seeded slugs")
		}
	})
}
