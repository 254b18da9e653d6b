// Package repositories implements the SQLite content store.
//
// Each repository reads one collection with hand-written SQL and gates rows on their
// publication flag. [SQLite] composes them into a [store.Backend].
//
// Key Implementations:
//   - [ArticleRepository] : articles, slugs, tag sets; tags are a JSON array matched with json_each
//   - [VideoRepository] : videos by level, category and YouTube ID
//   - [ProductRepository] : products by sort order, with JSON-encoded CTA buttons
//   - [RelatedRepository] : curated related links
//
// Search uses instr() over fold()ed columns, so user input is never a LIKE pattern and non-ASCII
// letters match regardless of case.
package repositories
