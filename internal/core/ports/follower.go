package ports

import (
	"context"
	"io"
)

// LogFollower streams lines appended to a log file.
//
//go:generate mockgen -source=follower.go -destination=mocks/mock_follower.go -package=mocks
type LogFollower interface {
	// Follow writes every line appended to path to w until ctx is cancelled.
	Follow(ctx context.Context, path string, w io.Writer) error
}
