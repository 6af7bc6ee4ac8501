// Package mangadex provides a Go client for the MangaDex v5 API.
//
// # Overview
//
// The package wraps the full catalogue surface (manga, chapters, covers,
// authors, scanlation groups, custom lists, chapter feeds) plus the
// authenticated account surface (follows, read markers, reading statuses,
// custom list management) behind a type-safe interface with structured
// errors.
//
// # Features
//
//   - Session/refresh token authentication with automatic, coalesced refresh
//   - Built-in rate limiting that honors the API's global and per-endpoint
//     limits, including Retry-After backoff
//   - Typed errors for authentication, validation, rate limit, not-found,
//     and server failures
//   - Structured logging via zerolog
//   - Pagination helpers and an iterator for large search result sets
//   - MangaDex@Home node resolution and page URL construction
//
// # Quick Start
//
// Anonymous access needs no configuration at all:
//
//	client, err := mangadex.NewClient(nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	list, err := client.SearchManga(ctx, &types.MangaSearchOptions{Title: "official test"})
//
// Authenticated access starts with a login, after which the client keeps
// the session fresh on its own:
//
//	if _, err := client.Login(ctx, username, password); err != nil {
//		log.Fatal(err)
//	}
//	feed, err := client.GetFollowedMangaFeed(ctx, nil)
//
// NewClient performs no network traffic; the first request (or Login)
// does. Session tokens expire after fifteen minutes and are refreshed
// transparently. Concurrent requests that hit an expired session share a
// single refresh round trip.
//
// # Errors
//
// All failures are typed and live in pkg/errors. Use errors.As to branch:
//
//	var rle *errors.RateLimitError
//	if errors.As(err, &rle) {
//		time.Sleep(rle.RetryAfter)
//	}
package mangadex
