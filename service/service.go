// Package service implements the application's operations over the user
// and post stores. Every operation that touches two documents runs as a
// sequence of independent atomic writes; there is no rollback, so a
// failure between steps is logged and surfaced to the caller instead of
// being reported as success.
package service

import (
	"github.com/sirupsen/logrus"

	"github.com/pratikdhikale87/Social-media/auth"
	"github.com/pratikdhikale87/Social-media/media"
	"github.com/pratikdhikale87/Social-media/store"
)

// Social coordinates all reads and writes against the two stores.
type Social struct {
	users     store.UserStore
	posts     store.PostStore
	images    media.Uploader
	passwords *auth.PasswordService
	tokens    *auth.TokenService

	maxAvatarBytes int64
	log            *logrus.Logger
}

func NewSocial(
	users store.UserStore,
	posts store.PostStore,
	images media.Uploader,
	passwords *auth.PasswordService,
	tokens *auth.TokenService,
	maxAvatarBytes int64,
	log *logrus.Logger,
) *Social {
	return &Social{
		users:          users,
		posts:          posts,
		images:         images,
		passwords:      passwords,
		tokens:         tokens,
		maxAvatarBytes: maxAvatarBytes,
		log:            log,
	}
}
