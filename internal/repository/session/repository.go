package session

import (
	"context"
	"time"

	"github.com/mousa-mostafa/capitone-Furniture/internal/domain"
)

// Session ties a bearer token to an optional logged-in user. Guest sessions
// carry a nil user and are priced in the base currency.
type Session struct {
	Token     string       `json:"token"`
	User      *domain.User `json:"user,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

// Repository stores sessions for their TTL. Sessions are ephemeral by design;
// neither backend survives them past expiry.
type Repository interface {
	Save(ctx context.Context, s Session, ttl time.Duration) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}
