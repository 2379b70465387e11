package usecase

import (
	"testing"
	"time"

	"blog-backend/internal/post/domain"
	"blog-backend/internal/post/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCommentRepository is an in-memory CommentRepository for testing
type mockCommentRepository struct {
	comments map[string]*domain.Comment // id -> comment
	nextID   int
}

func newMockCommentRepository() *mockCommentRepository {
	return &mockCommentRepository{comments: make(map[string]*domain.Comment)}
}

func (m *mockCommentRepository) Create(comment *domain.Comment) error {
	if comment.ID == "" {
		m.nextID++
		comment.ID = "comment-" + string(rune('0'+m.nextID))
	}
	comment.CreatedAt = time.Now()
	m.comments[comment.ID] = comment
	return nil
}

func (m *mockCommentRepository) FindByPost(postID string) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	for _, comment := range m.comments {
		if comment.PostID == postID {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

func (m *mockCommentRepository) FindByPostAndID(postID, commentID string) (*domain.Comment, error) {
	comment, ok := m.comments[commentID]
	if !ok || comment.PostID != postID {
		return nil, nil
	}
	return comment, nil
}

func (m *mockCommentRepository) Update(comment *domain.Comment) error {
	m.comments[comment.ID] = comment
	return nil
}

func (m *mockCommentRepository) Delete(id string) error {
	delete(m.comments, id)
	return nil
}

type commentFixture struct {
	uc          CommentUsecase
	commentRepo *mockCommentRepository
	post        *domain.Post
	otherPost   *domain.Post
	comment     *domain.Comment
}

// Two posts by author-1; one comment on the first post by author-2.
func newCommentFixture(t *testing.T) *commentFixture {
	t.Helper()

	postRepo := newMockPostRepository()
	commentRepo := newMockCommentRepository()

	post := &domain.Post{Title: "Introduction to Go", Body: "body", AuthorID: "author-1"}
	require.NoError(t, postRepo.Create(post))
	otherPost := &domain.Post{Title: "Another Post", Body: "body", AuthorID: "author-1"}
	require.NoError(t, postRepo.Create(otherPost))

	uc := NewCommentUsecase(postRepo, commentRepo)

	comment, err := uc.AddComment("author-2", post.ID, &dto.CommentRequest{Content: "Great post!"})
	require.NoError(t, err)

	return &commentFixture{
		uc:          uc,
		commentRepo: commentRepo,
		post:        post,
		otherPost:   otherPost,
		comment:     comment,
	}
}

func TestAddCommentLinksPostAndAuthor(t *testing.T) {
	f := newCommentFixture(t)

	assert.Equal(t, f.post.ID, f.comment.PostID)
	assert.Equal(t, "author-2", f.comment.AuthorID)
	assert.Equal(t, "Great post!", f.comment.Content)
}

func TestAddCommentUnknownPost(t *testing.T) {
	f := newCommentFixture(t)

	_, err := f.uc.AddComment("author-2", "missing", &dto.CommentRequest{Content: "hello"})
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestUpdateCommentOwnerOnly(t *testing.T) {
	f := newCommentFixture(t)

	_, err := f.uc.UpdateComment("author-1", f.post.ID, f.comment.ID, &dto.CommentRequest{Content: "edited"})
	assert.ErrorIs(t, err, ErrCommentForbidden)

	updated, err := f.uc.UpdateComment("author-2", f.post.ID, f.comment.ID, &dto.CommentRequest{Content: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)
}

func TestUpdateCommentWrongPostIsNotFound(t *testing.T) {
	f := newCommentFixture(t)

	// Scoping wins over ownership: even the comment's author gets "not found"
	// when the comment does not belong to the given post.
	_, err := f.uc.UpdateComment("author-2", f.otherPost.ID, f.comment.ID, &dto.CommentRequest{Content: "edited"})
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestDeleteCommentOwnerOnly(t *testing.T) {
	f := newCommentFixture(t)

	err := f.uc.DeleteComment("author-1", f.post.ID, f.comment.ID)
	assert.ErrorIs(t, err, ErrCommentForbidden)
	assert.Contains(t, f.commentRepo.comments, f.comment.ID, "comment must remain persisted")

	require.NoError(t, f.uc.DeleteComment("author-2", f.post.ID, f.comment.ID))
	assert.NotContains(t, f.commentRepo.comments, f.comment.ID)
}

func TestDeleteCommentWrongPostIsNotFound(t *testing.T) {
	f := newCommentFixture(t)

	err := f.uc.DeleteComment("author-2", f.otherPost.ID, f.comment.ID)
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestListCommentsScopedToPost(t *testing.T) {
	f := newCommentFixture(t)

	comments, err := f.uc.ListComments(f.post.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 1)

	comments, err = f.uc.ListComments(f.otherPost.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	_, err = f.uc.ListComments("missing")
	assert.ErrorIs(t, err, ErrPostNotFound)
}
