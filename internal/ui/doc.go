// Package ui implements an interactive terminal browser for articles using bubbletea's Elm architecture.
//
// The browser has two views:
//  1. [ListView] : the visible articles, the current filter selection and a search box
//  2. [DetailView] : one article with its body rendered as Markdown
//
// Every key that changes the selection builds a new [filter.State] and recomputes the visible list
// from the already-loaded section; only the initial load and opening an article touch the store.
//
// Keys: a cycles audience, c cycles category, t cycles tag, x clears every filter, / focuses search,
// enter opens the selected article, esc goes back, q quits.
package ui
