package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"github.com/desertthunder/contenthub/internal/models"
)

var _ list.Item = articleItem{}

// articleItem wraps [models.ArticlePreview] to implement [list.Item].
type articleItem struct {
	article models.ArticlePreview
}

func (i articleItem) FilterValue() string { return i.article.Title }
func (i articleItem) Title() string       { return i.article.Title }
func (i articleItem) Description() string {
	desc := fmt.Sprintf("%s • %s", i.article.Category, i.article.ReadTime)
	if len(i.article.Tags) > 0 {
		desc = fmt.Sprintf("%s • %s", desc, strings.Join(i.article.Tags, ", "))
	}
	return desc
}

func articleItems(articles []models.ArticlePreview) []list.Item {
	items := make([]list.Item, len(articles))
	for i, a := range articles {
		items[i] = articleItem{article: a}
	}
	return items
}
