package mangadex

import (
	"context"
	"io"

	"github.com/gomanga/mangadex/pkg/types"
)

// MangaIterator walks a manga search result set page by page, yielding one
// manga at a time. It is not safe for concurrent use.
type MangaIterator struct {
	client    *Client
	options   *types.MangaSearchOptions
	buffer    []types.MangaResponse
	bufferIdx int
	offset    int
	total     int
	fetched   bool
	err       error
	ctx       context.Context
}

// NewMangaIterator creates an iterator over the given search. A nil options
// iterates the full catalogue in the server's default order. The iterator
// fetches pages of options.Limit (default 100) as needed.
func (c *Client) NewMangaIterator(ctx context.Context, options *types.MangaSearchOptions) *MangaIterator {
	if options == nil {
		options = &types.MangaSearchOptions{}
	}
	if options.Limit <= 0 || options.Limit > 100 {
		options.Limit = 100
	}
	return &MangaIterator{
		client:  c,
		options: options,
		offset:  options.Offset,
		ctx:     ctx,
	}
}

// HasNext reports whether another manga is available without fetching it.
// It returns true before the first page has been loaded.
func (it *MangaIterator) HasNext() bool {
	if it.err != nil {
		return false
	}
	if it.bufferIdx < len(it.buffer) {
		return true
	}
	return !it.fetched || it.offset < it.total
}

// Next returns the next manga, fetching the following page when the current
// one is exhausted. It returns io.EOF once the result set is consumed.
func (it *MangaIterator) Next() (*types.Manga, error) {
	if it.err != nil {
		return nil, it.err
	}

	if it.bufferIdx >= len(it.buffer) {
		if it.fetched && it.offset >= it.total {
			return nil, io.EOF
		}

		it.options.Offset = it.offset
		page, err := it.client.SearchManga(it.ctx, it.options)
		if err != nil {
			it.err = err
			return nil, err
		}

		it.buffer = page.Results
		it.bufferIdx = 0
		it.offset += len(page.Results)
		it.total = page.Total
		it.fetched = true

		if len(it.buffer) == 0 {
			return nil, io.EOF
		}
	}

	manga := it.buffer[it.bufferIdx].Data
	it.bufferIdx++
	return &manga, nil
}

// Err returns the first error encountered during iteration, if any.
func (it *MangaIterator) Err() error {
	return it.err
}
