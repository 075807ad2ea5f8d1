// Package sessionstore persists concierge sessions between turns. Redis is
// the production backend; Memory covers development and tests.
package sessionstore

import (
	"context"

	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/session"
)

type Store interface {
	// Get returns the stored session and whether it existed. A missing
	// session is not an error; callers start a fresh one.
	Get(ctx context.Context, id string) (session.Session, bool, error)
	Save(ctx context.Context, s session.Session) error
	Delete(ctx context.Context, id string) error
}
