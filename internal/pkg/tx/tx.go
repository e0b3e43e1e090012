package tx

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/grpc"
)

type key string

const KeyTx = key("tx")

type DbRepo interface {
	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type Tx struct {
	DbRepo DbRepo
}

func TxMiddlewareHTTP(dbRepo DbRepo) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), KeyTx, Tx{DbRepo: dbRepo})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func TxMiddlewareGRPC(dbRepo DbRepo) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		return handler(context.WithValue(ctx, KeyTx, Tx{DbRepo: dbRepo}), req)
	}
}

// WithRepo puts the transaction owner into ctx for callers outside the HTTP
// and gRPC middleware chains, such as workers.
func WithRepo(ctx context.Context, dbRepo DbRepo) context.Context {
	return context.WithValue(ctx, KeyTx, Tx{DbRepo: dbRepo})
}

// TxExecute runs cb inside a transaction of the repository stored in ctx.
func TxExecute(ctx context.Context, cb func(ctx context.Context) error) error {
	t, ok := ctx.Value(KeyTx).(Tx)
	if !ok || t.DbRepo == nil {
		return fmt.Errorf("failed to find transaction owner in context")
	}
	return t.DbRepo.WithTx(ctx, cb)
}
