package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrPostForbidden    = errors.New("not the author of this post")
	ErrCommentForbidden = errors.New("not the author of this comment")
)

// NoPostsForAuthorError reports an author filter that matched nothing. The
// listing endpoint deliberately answers 404 with this message instead of an
// empty list.
type NoPostsForAuthorError struct {
	Author string
}

func (e *NoPostsForAuthorError) Error() string {
	return fmt.Sprintf("No posts found for author %s", e.Author)
}
