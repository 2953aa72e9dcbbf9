package source

import (
	"context"

	"github.com/umputun/readscope/pkg/domain"
)

// Forum describes a configured thread source
type Forum struct {
	ID      string // short stable identifier, used as thread id prefix
	Name    string
	FeedURL string
}

// Adapter pulls the current thread listing of a forum. Implementations return
// normalized threads; persistence and new-thread detection happen upstream.
type Adapter interface {
	Fetch(ctx context.Context, forum Forum) ([]domain.Thread, error)
}
