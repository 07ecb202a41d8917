// Package loader provides per-request DataLoaders that batch signer lookups
// for listings of many signature requests into a single SQL call.
package loader

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/docsign-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type signerRepo interface {
	ListByRequestIDs(ctx context.Context, requestIDs []uuid.UUID) ([]domain.Signer, error)
}

// Loaders holds the DataLoaders of one request. Results are cached for the
// lifetime of the request only.
type Loaders struct {
	SignersByRequestID *dataloader.Loader[uuid.UUID, []domain.Signer]
}

// NewLoaders creates a fresh set of loaders.
func NewLoaders(signers signerRepo) *Loaders {
	return &Loaders{
		SignersByRequestID: dataloader.NewBatchedLoader(
			newSignersBatchFn(signers),
			dataloader.WithWait[uuid.UUID, []domain.Signer](wait),
			dataloader.WithBatchCapacity[uuid.UUID, []domain.Signer](maxBatch),
		),
	}
}

func newSignersBatchFn(repo signerRepo) dataloader.BatchFunc[uuid.UUID, []domain.Signer] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.Signer] {
		signers, err := repo.ListByRequestIDs(ctx, keys)
		if err != nil {
			results := make([]*dataloader.Result[[]domain.Signer], len(keys))
			for i := range results {
				results[i] = &dataloader.Result[[]domain.Signer]{Error: err}
			}
			return results
		}

		grouped := make(map[uuid.UUID][]domain.Signer, len(keys))
		for _, s := range signers {
			grouped[s.SignatureRequestID] = append(grouped[s.SignatureRequestID], s)
		}

		results := make([]*dataloader.Result[[]domain.Signer], len(keys))
		for i, key := range keys {
			v, ok := grouped[key]
			if !ok {
				v = []domain.Signer{}
			}
			results[i] = &dataloader.Result[[]domain.Signer]{Data: v}
		}
		return results
	}
}

// SignersFor loads the signers of every request in one batch, keyed by
// request id.
func (l *Loaders) SignersFor(ctx context.Context, requestIDs []uuid.UUID) (map[uuid.UUID][]domain.Signer, error) {
	if len(requestIDs) == 0 {
		return map[uuid.UUID][]domain.Signer{}, nil
	}
	thunk := l.SignersByRequestID.LoadMany(ctx, requestIDs)
	lists, errs := thunk()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	out := make(map[uuid.UUID][]domain.Signer, len(requestIDs))
	for i, id := range requestIDs {
		out[id] = lists[i]
	}
	return out, nil
}

type contextKey string

const loadersKey contextKey = "loaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("loader: loaders not found in context, is the middleware configured?")
	}
	return l
}

// Middleware creates an HTTP middleware that instantiates per-request
// loaders and stores them in the request context.
func Middleware(signers signerRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(signers))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
