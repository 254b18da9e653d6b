// Package tasks runs the multi-read operations that sit on top of the Query Layer.
//
// # Section loading
//
// A page-sized view of the catalogue needs several independent reads: the articles
// section needs the article list, the tag union and a handful of related links. The
// [Loader] issues those reads concurrently with an errgroup and waits for all of them.
// The Query Layer never returns errors, so one failed read leaves its slot empty
// without cancelling the others.
//
// The loaded section then runs the filter engine against the caller's selection, so
// a section carries both the full collection and the visible subset.
//
// # Export
//
// The [Exporter] writes every collection to a directory as JSON, CSV, Markdown or
// text. Collections are handed to a bounded worker pool and every backend read
// waits on a shared rate limiter. Failures are recorded per collection in the
// manifest and never abort the rest of the export.
//
// # Progress Reporting
//
// Export progress is reported on an optional channel. Sends use select with default,
// so a slow or absent reader never blocks the workers.
package tasks
