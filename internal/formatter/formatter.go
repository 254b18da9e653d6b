// package formatter renders content collections as CSV, Markdown, aligned text tables and JSON
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/mattn/go-runewidth"

	"github.com/desertthunder/contenthub/internal/models"
	"github.com/desertthunder/contenthub/internal/shared"
)

// Format names an output encoding.
type Format string

const (
	FormatText     Format = "txt"
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
)

// Formats returns the supported formats.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatCSV, FormatMarkdown}
}

// ParseFormat converts a flag value into a [Format]. Empty input is text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "txt", "text", "table":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("%w: format %q (want txt, json, csv or markdown)", shared.ErrInvalidFlag, s)
}

// Extension returns the file extension, without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return "md"
	case FormatJSON, FormatCSV:
		return string(f)
	default:
		return "txt"
	}
}

// Table is a header row and its records. Every row has len(Header) cells.
type Table struct {
	Header []string
	Rows   [][]string
}

func date(t time.Time) string {
	return t.Format("2006-01-02")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// ArticlesTable lays out article previews.
func ArticlesTable(items []models.ArticlePreview) Table {
	t := Table{Header: []string{"Slug", "Title", "Category", "Tags", "Author", "Read Time", "Featured", "Published"}}
	for _, a := range items {
		t.Rows = append(t.Rows, []string{
			a.Slug, a.Title, a.Category, strings.Join(a.Tags, ", "), a.Author, a.ReadTime,
			yesNo(a.Featured), date(a.PublishedAt),
		})
	}
	return t
}

// VideosTable lays out videos.
func VideosTable(items []models.Video) Table {
	t := Table{Header: []string{"YouTube ID", "Title", "Category", "Level", "Created"}}
	for _, v := range items {
		t.Rows = append(t.Rows, []string{v.YouTubeID, v.Title, v.Category, v.Level.Label(), date(v.CreatedAt)})
	}
	return t
}

// ProductsTable lays out products.
func ProductsTable(items []models.Product) Table {
	t := Table{Header: []string{"ID", "Title", "Category", "Price", "Price Type", "Badge", "Affiliate", "Order"}}
	for _, p := range items {
		t.Rows = append(t.Rows, []string{
			p.ID, p.Title, p.Category, p.Price, string(p.PriceType), models.Deref(p.Badge),
			yesNo(p.IsAffiliate), strconv.Itoa(p.SortOrder),
		})
	}
	return t
}

// RelatedTable lays out related links.
func RelatedTable(items []models.RelatedContent) Table {
	t := Table{Header: []string{"Title", "Type", "Category", "Link", "Order"}}
	for _, r := range items {
		t.Rows = append(t.Rows, []string{r.Title, string(r.ContentType), r.Label(), r.Href, strconv.Itoa(r.SortOrder)})
	}
	return t
}

// CSV encodes the table with a header line.
func (t Table) CSV() ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(t.Header); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}
	if err := writer.WriteAll(t.Rows); err != nil {
		return nil, fmt.Errorf("failed to write CSV records: %w", err)
	}
	return buf.Bytes(), nil
}

func (t Table) widths() []int {
	widths := make([]int, len(t.Header))
	measure := func(row []string) {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(t.Header)
	for _, row := range t.Rows {
		measure(row)
	}
	return widths
}

func pad(s string, width int) string {
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// Text aligns the table in columns by display width; the header is upper-cased.
func (t Table) Text() []byte {
	widths := t.widths()
	var buf bytes.Buffer

	line := func(row []string, upper bool) {
		cells := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if upper {
				cell = strings.ToUpper(cell)
			}
			if i < len(widths)-1 {
				cell = pad(cell, widths[i])
			}
			cells[i] = cell
		}
		buf.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
		buf.WriteByte('\n')
	}

	line(t.Header, true)
	for _, row := range t.Rows {
		line(row, false)
	}
	return buf.Bytes()
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// Markdown renders a pipe table padded to display width.
func (t Table) Markdown() []byte {
	esc := Table{Header: make([]string, len(t.Header))}
	for i, h := range t.Header {
		esc.Header[i] = escapeCell(h)
	}
	for _, row := range t.Rows {
		r := make([]string, len(row))
		for i, c := range row {
			r[i] = escapeCell(c)
		}
		esc.Rows = append(esc.Rows, r)
	}

	widths := esc.widths()
	for i := range widths {
		widths[i] = max(widths[i], 3)
	}

	var buf bytes.Buffer
	line := func(row []string) {
		buf.WriteString("|")
		for i, w := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			buf.WriteString(" " + pad(cell, w) + " |")
		}
		buf.WriteByte('\n')
	}

	line(esc.Header)
	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}
	line(sep)
	for _, row := range esc.Rows {
		line(row)
	}
	return buf.Bytes()
}

// Render encodes v in format; the tabular formats use table.
func Render(v any, table Table, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return shared.MarshalJSON(v, true)
	case FormatCSV:
		return table.CSV()
	case FormatMarkdown:
		return table.Markdown(), nil
	default:
		return table.Text(), nil
	}
}

// HTMLToMarkdown converts an article body to Markdown. Plain text passes through.
func HTMLToMarkdown(body string) (string, error) {
	if strings.TrimSpace(body) == "" {
		return "", nil
	}
	md, err := htmltomarkdown.ConvertString(body)
	if err != nil {
		return "", fmt.Errorf("failed to convert article body: %w", err)
	}
	return strings.TrimSpace(md), nil
}

// ArticleMarkdown renders a full article: heading, metadata block and Markdown body.
func ArticleMarkdown(a *models.Article) ([]byte, error) {
	body, err := HTMLToMarkdown(a.Content)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n\n", a.Title)
	if desc := models.Deref(a.Description); desc != "" {
		fmt.Fprintf(&buf, "> %s\n\n", desc)
	}
	fmt.Fprintf(&buf, "**Author**: %s\n", a.Author)
	fmt.Fprintf(&buf, "**Category**: %s\n", a.Category)
	if len(a.Tags) > 0 {
		fmt.Fprintf(&buf, "**Tags**: %s\n", strings.Join(a.Tags, ", "))
	}
	fmt.Fprintf(&buf, "**Published**: %s (%s)\n\n", date(a.PublishedAt), a.ReadTime)
	if body != "" {
		buf.WriteString(body)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// WriteFile renders v in format into dir/name.<ext> and returns the path.
func WriteFile(dir, name string, v any, table Table, format Format) (string, error) {
	data, err := Render(v, table, format)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, name+"."+format.Extension())
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// articleFileName turns a slug into a file name that stays inside the export directory.
func articleFileName(slug string) string {
	name := strings.NewReplacer("/", "-", `\`, "-").Replace(slug)
	name = strings.TrimLeft(name, ".")
	if name == "" {
		name = "article"
	}
	return name + ".md"
}

// WriteArticles writes one Markdown file per article into dir and returns their paths.
func WriteArticles(dir string, articles []models.Article) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	files := make([]string, 0, len(articles))
	for i := range articles {
		data, err := ArticleMarkdown(&articles[i])
		if err != nil {
			return files, fmt.Errorf("%s: %w", articles[i].Slug, err)
		}
		path := filepath.Join(dir, articleFileName(articles[i].Slug))
		if err := os.WriteFile(path, data, 0644); err != nil {
			return files, fmt.Errorf("failed to write %s: %w", path, err)
		}
		files = append(files, path)
	}
	return files, nil
}
