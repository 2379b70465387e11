package usecase

import (
	"blog-backend/internal/post/domain"
	"blog-backend/internal/post/dto"
	"blog-backend/internal/post/repository"
)

// commentUsecase implements CommentUsecase
type commentUsecase struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
}

func NewCommentUsecase(postRepo repository.PostRepository, commentRepo repository.CommentRepository) CommentUsecase {
	return &commentUsecase{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

func (u *commentUsecase) AddComment(userID, postID string, req *dto.CommentRequest) (*domain.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	post, err := u.postRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comment := &domain.Comment{
		PostID:   post.ID,
		AuthorID: userID,
		Content:  req.Content,
	}
	if err := u.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	return u.commentRepo.FindByPostAndID(post.ID, comment.ID)
}

func (u *commentUsecase) ListComments(postID string) ([]*domain.Comment, error) {
	post, err := u.postRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	return u.commentRepo.FindByPost(post.ID)
}

// UpdateComment edits a comment. The comment must belong to the given post,
// and only its author may change it. The scoping check runs before the
// ownership check so a wrong post id reads as "not found", never "forbidden".
func (u *commentUsecase) UpdateComment(userID, postID, commentID string, req *dto.CommentRequest) (*domain.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	comment, err := u.findScoped(postID, commentID)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != userID {
		return nil, ErrCommentForbidden
	}

	comment.Content = req.Content
	if err := u.commentRepo.Update(comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (u *commentUsecase) DeleteComment(userID, postID, commentID string) error {
	comment, err := u.findScoped(postID, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != userID {
		return ErrCommentForbidden
	}

	return u.commentRepo.Delete(comment.ID)
}

func (u *commentUsecase) findScoped(postID, commentID string) (*domain.Comment, error) {
	post, err := u.postRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comment, err := u.commentRepo.FindByPostAndID(post.ID, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}

	return comment, nil
}
