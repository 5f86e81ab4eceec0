// Package media stores raw image bytes with an external provider and
// hands back a durable URL.
package media

import (
	"context"
	"io"
)

// Folders group uploads by asset kind on the provider side.
const (
	FolderAvatars = "social/avatars"
	FolderPosts   = "social/posts"
)

type Uploader interface {
	Upload(ctx context.Context, r io.Reader, folder string) (string, error)
}
