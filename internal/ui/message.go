package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/desertthunder/contenthub/internal/models"
	"github.com/desertthunder/contenthub/internal/tasks"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgSectionLoaded MsgKind = iota
	MsgArticleLoaded
)

type articleLoaded struct {
	article  *models.Article
	markdown string
	err      error
}

// sectionLoadedMsg is the constructor for [MsgSectionLoaded]
func sectionLoadedMsg(section tasks.ArticlesSection) Msg {
	return Msg{kind: MsgSectionLoaded, data: section}
}

// articleLoadedMsg is the constructor for [MsgArticleLoaded]
func articleLoadedMsg(article *models.Article, markdown string, err error) Msg {
	return Msg{kind: MsgArticleLoaded, data: articleLoaded{article, markdown, err}}
}
