// Package lookbook models the shareable product lookbook a stylist can
// send a guest after a chat session.
package lookbook

import (
	"time"

	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/filters"
)

type Lookbook struct {
	Reference string
	CreatedAt time.Time
	Guest     Guest
	Items     []filters.ProductSummary
	Note      string
}

type Guest struct {
	Name  string
	Email string
}
