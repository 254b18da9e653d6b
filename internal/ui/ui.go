package ui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/desertthunder/contenthub/internal/content"
	"github.com/desertthunder/contenthub/internal/filter"
	"github.com/desertthunder/contenthub/internal/formatter"
	"github.com/desertthunder/contenthub/internal/models"
	"github.com/desertthunder/contenthub/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	LoadingView ViewState = iota
	ListView
	DetailView
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	chromeHeight  = 6
)

// Model represents the TUI application state.
type Model struct {
	ctx      context.Context
	view     ViewState
	content  *content.Service
	loader   *tasks.Loader
	section  tasks.ArticlesSection
	width    int
	height   int
	articles list.Model
	search   textinput.Model
	detail   viewport.Model
	selected *models.Article
	err      error
	help     help.Model
	keys     keyMap
}

// NewModel builds the browser over svc. Nothing is read until [Model.Init] runs.
func NewModel(ctx context.Context, svc *content.Service) *Model {
	articles := list.New(nil, list.NewDefaultDelegate(), defaultWidth, defaultHeight-chromeHeight)
	articles.Title = "Articles"
	articles.SetFilteringEnabled(false)
	articles.SetShowHelp(false)
	articles.Styles.Title = styles.title

	search := textinput.New()
	search.Placeholder = "search title, description, tags"
	search.Prompt = "/ "
	search.CharLimit = 200

	return &Model{
		ctx:      ctx,
		view:     LoadingView,
		content:  svc,
		loader:   tasks.NewLoader(svc),
		section:  tasks.ArticlesSection{State: filter.DefaultState()},
		width:    defaultWidth,
		height:   defaultHeight,
		articles: articles,
		search:   search,
		detail:   viewport.New(defaultWidth, defaultHeight-chromeHeight),
		help:     help.New(),
		keys:     newKeyMap(),
	}
}

// State returns the current filter selection.
func (m *Model) State() filter.State { return m.section.State }

// Visible returns the articles shown under the current selection.
func (m *Model) Visible() []models.ArticlePreview { return m.section.Visible }

func (m *Model) Init() tea.Cmd {
	return m.loadSection()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.articles.SetSize(msg.Width, max(msg.Height-chromeHeight, 1))
		m.detail.Width = msg.Width
		m.detail.Height = max(msg.Height-chromeHeight, 1)
		m.search.Width = max(msg.Width-4, 10)
		return m, nil
	case Msg:
		return m.handleMsg(msg)
	case tea.KeyMsg:
		switch m.view {
		case LoadingView:
			if key.Matches(msg, m.keys.quit) {
				return m, tea.Quit
			}
			return m, nil
		case ListView:
			if m.search.Focused() {
				return m.handleSearchKeys(msg)
			}
			return m.handleListKeys(msg)
		case DetailView:
			return m.handleDetailKeys(msg)
		}
	}
	return m, nil
}

func (m *Model) View() string {
	switch m.view {
	case LoadingView:
		return styles.title.Render("Loading articles...")
	case DetailView:
		return m.renderDetail()
	default:
		return m.renderList()
	}
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgSectionLoaded:
		m.section = msg.data.(tasks.ArticlesSection)
		m.view = ListView
		return m, m.refresh()
	case MsgArticleLoaded:
		loaded := msg.data.(articleLoaded)
		m.err = loaded.err
		m.selected = loaded.article
		m.detail.SetContent(loaded.markdown)
		m.detail.GotoTop()
		m.view = DetailView
	}
	return m, nil
}

func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.audience):
		return m, m.apply(m.section.State.WithAudience(nextAudience(m.section.State.Audience)))
	case key.Matches(msg, m.keys.category):
		return m, m.apply(m.section.State.WithCategory(nextOption(m.section.Categories, m.section.State.Category)))
	case key.Matches(msg, m.keys.tag):
		return m, m.apply(m.section.State.WithTag(nextOption(m.section.Tags, m.section.State.Tag)))
	case key.Matches(msg, m.keys.clear):
		m.search.SetValue("")
		return m, m.apply(m.section.State.Clear())
	case key.Matches(msg, m.keys.search):
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.enter):
		item, ok := m.articles.SelectedItem().(articleItem)
		if !ok {
			return m, nil
		}
		return m, m.fetchArticle(item.article.Slug)
	case key.Matches(msg, m.keys.back):
		return m, nil
	}

	var cmd tea.Cmd
	m.articles, cmd = m.articles.Update(msg)
	return m, cmd
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc, tea.KeyEnter:
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == m.section.State.SearchQuery {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.apply(m.section.State.WithSearch(m.search.Value())))
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = ListView
		m.selected = nil
		m.err = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

// apply recomputes the visible articles for s from the loaded section.
func (m *Model) apply(s filter.State) tea.Cmd {
	m.section = m.section.Apply(s)
	return m.refresh()
}

func (m *Model) refresh() tea.Cmd {
	m.articles.Title = fmt.Sprintf("Articles (%d of %d)", len(m.section.Visible), m.section.Total)
	return m.articles.SetItems(articleItems(m.section.Visible))
}

func (m *Model) loadSection() tea.Cmd {
	return func() tea.Msg {
		return sectionLoadedMsg(m.loader.LoadArticles(m.ctx, m.section.State))
	}
}

func (m *Model) fetchArticle(slug string) tea.Cmd {
	return func() tea.Msg {
		article, ok := m.content.ArticleBySlug(m.ctx, slug)
		if !ok {
			return articleLoadedMsg(nil, "", fmt.Errorf("article %q not found", slug))
		}
		body, err := formatter.ArticleMarkdown(article)
		return articleLoadedMsg(article, string(body), err)
	}
}

func (m *Model) renderList() string {
	var b strings.Builder
	b.WriteString(m.articles.View())
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}

func (m *Model) renderStatus() string {
	s := m.section.State
	status := strings.Join([]string{
		styles.facet("audience", s.Audience.Label(), s.Audience != models.AudienceAll),
		styles.facet("category", s.Category, s.Category != ""),
		styles.facet("tag", s.Tag, s.Tag != ""),
	}, " • ")
	if m.section.Active {
		return styles.badge.Render("filtered") + " " + status
	}
	return status
}

func (m *Model) renderDetail() string {
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.up, m.keys.down, m.keys.back, m.keys.quit})
	if m.err != nil {
		return fmt.Sprintf("%s\n\n%s", styles.err.Render(fmt.Sprintf("Could not open article: %v", m.err)), helpView)
	}
	return fmt.Sprintf("%s\n%s", m.detail.View(), helpView)
}

// nextAudience cycles through every audience level, wrapping back to "all".
func nextAudience(current models.AudienceLevel) models.AudienceLevel {
	levels := models.AudienceLevels()
	for i, o := range levels {
		if o.Value == current {
			return levels[(i+1)%len(levels)].Value
		}
	}
	return models.AudienceAll
}

// nextOption steps from current to the following option, with "" (no selection) after the last.
func nextOption(options []string, current string) string {
	i := slices.Index(options, current)
	if i+1 >= len(options) {
		return ""
	}
	return options[i+1]
}
