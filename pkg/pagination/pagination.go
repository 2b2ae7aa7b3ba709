// Package pagination drains paged list endpoints into a single slice.
//
// Both fetchers are best effort: when a page request fails they return the
// items accumulated so far together with the error, so callers can decide
// whether a partial result is still useful.
package pagination

import (
	"context"
	"errors"
	"fmt"
)

// ErrCursorStalled is returned when the server hands back a continuation
// token that was already followed.
var ErrCursorStalled = errors.New("pagination cursor did not advance")

// TokenPage is one page of a continuation-token endpoint.
type TokenPage[T any] struct {
	Items     []T
	NextToken string
}

// NumberedPage is one page of a page-number/page-size endpoint.
type NumberedPage[T any] struct {
	Items      []T
	TotalCount int
}

// TokenFetcher requests the page that starts at token. The first call gets "".
type TokenFetcher[T any] func(ctx context.Context, token string) (TokenPage[T], error)

// PageFetcher requests the 1-based pageNumber with the given pageSize.
type PageFetcher[T any] func(ctx context.Context, pageNumber, pageSize int) (NumberedPage[T], error)

// FetchAllByToken follows continuation tokens until the server stops returning one.
// A token that was already followed stops the loop with ErrCursorStalled.
func FetchAllByToken[T any](ctx context.Context, fetch TokenFetcher[T]) ([]T, error) {
	var all []T
	token := ""
	seen := map[string]struct{}{}

	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return all, err
		}

		out, err := fetch(ctx, token)
		if err != nil {
			return all, fmt.Errorf("page %d: %w", page, err)
		}
		if len(out.Items) == 0 {
			return all, nil
		}
		all = append(all, out.Items...)

		if out.NextToken == "" {
			return all, nil
		}
		if _, ok := seen[out.NextToken]; ok {
			return all, fmt.Errorf("page %d: %w", page, ErrCursorStalled)
		}
		seen[out.NextToken] = struct{}{}
		token = out.NextToken
	}
}

// FetchAllByPage walks page numbers until a page comes back empty or the
// accumulated count reaches the server-reported total.
//
// TotalCount is assumed stable between calls. If records are added or removed
// while paging the result may be short or contain a shifted item; the empty
// page check keeps the loop finite either way.
func FetchAllByPage[T any](ctx context.Context, pageSize int, fetch PageFetcher[T]) ([]T, error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("invalid page size %d", pageSize)
	}

	var all []T
	for pageNumber := 1; ; pageNumber++ {
		if err := ctx.Err(); err != nil {
			return all, err
		}

		out, err := fetch(ctx, pageNumber, pageSize)
		if err != nil {
			return all, fmt.Errorf("page %d: %w", pageNumber, err)
		}
		if len(out.Items) == 0 {
			return all, nil
		}
		all = append(all, out.Items...)

		if len(all) >= out.TotalCount {
			return all, nil
		}
	}
}
