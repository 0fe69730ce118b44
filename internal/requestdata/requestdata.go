package requestdata

import (
	"context"

	"github.com/google/uuid"
)

type contextKey struct{}

// RequestData is the per-request identity attached by the auth middleware.
type RequestData struct {
	UserID uuid.UUID
	Email  string
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, contextKey{}, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	rd, _ := ctx.Value(contextKey{}).(*RequestData)
	return rd
}

// UserID returns the authenticated user's id, with ok false when the
// request carries no identity.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	if rd := GetRequestData(ctx); rd != nil && rd.UserID != uuid.Nil {
		return rd.UserID, true
	}
	return uuid.Nil, false
}
