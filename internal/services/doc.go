// Package services implements the remote content store over a Supabase project's PostgREST API.
//
// # API Client
//
// [APIService] performs rate-limited GET requests against /rest/v1/<table>, sending the anonymous
// key as both the apikey header and a bearer token. Transport failures wrap
// [shared.ErrServiceUnavailable]; non-2xx responses and undecodable bodies wrap [shared.ErrBackend],
// carrying the [APIError] message when PostgREST sends one.
//
// # Supabase Backend
//
// [SupabaseService] implements [store.Backend]. Every read adds the publication gate
// (is_published=eq.true or is_active=eq.true) and the default ordering for its collection.
// Searches become an or=(...ilike...) filter over quoted values, with LIKE wildcards in user input escaped.
//
// Single-row lookups request limit=1 and report an empty result as [shared.ErrNotFound].
package services
