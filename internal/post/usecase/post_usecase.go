package usecase

import (
	"blog-backend/internal/post/domain"
	"blog-backend/internal/post/dto"
	"blog-backend/internal/post/repository"
	"blog-backend/internal/search"
)

// postUsecase implements PostUsecase
type postUsecase struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
	hooks        *search.Hooks
}

func NewPostUsecase(postRepo repository.PostRepository, categoryRepo repository.CategoryRepository, hooks *search.Hooks) PostUsecase {
	return &postUsecase{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		hooks:        hooks,
	}
}

// CreatePost persists a post for authorID. The author comes from the access
// token, never from the request body.
func (u *postUsecase) CreatePost(authorID string, req *dto.PostRequest) (*domain.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	post := &domain.Post{
		Title:    req.Title,
		Body:     req.Body,
		AuthorID: authorID,
	}
	if err := u.postRepo.Create(post); err != nil {
		return nil, err
	}

	categories, err := u.resolveCategories(req.Categories)
	if err != nil {
		return nil, err
	}
	if err := u.postRepo.ReplaceCategories(post, categories); err != nil {
		return nil, err
	}

	created, err := u.postRepo.FindByID(post.ID)
	if err != nil {
		return nil, err
	}

	u.hooks.PostSaved(created)
	return created, nil
}

func (u *postUsecase) GetPost(postID string) (*domain.Post, error) {
	post, err := u.postRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (u *postUsecase) ListPosts(authorFilter string, limit, offset int) ([]*domain.Post, int64, error) {
	if authorFilter != "" {
		posts, total, err := u.postRepo.FindByAuthorUsername(authorFilter, limit, offset)
		if err != nil {
			return nil, 0, err
		}
		if total == 0 {
			return nil, 0, &NoPostsForAuthorError{Author: authorFilter}
		}
		return posts, total, nil
	}

	return u.postRepo.FindAll(limit, offset)
}

func (u *postUsecase) ListMyPosts(userID string) ([]*domain.Post, error) {
	return u.postRepo.FindByAuthorID(userID)
}

func (u *postUsecase) SearchByCategory(category string, limit, offset int) ([]*domain.Post, int64, error) {
	return u.postRepo.FindByCategoryName(category, limit, offset)
}

func (u *postUsecase) UpdatePost(userID, postID string, req *dto.PostRequest) (*domain.Post, error) {
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
	if post.AuthorID != userID {
		return nil, ErrPostForbidden
	}

	post.Title = req.Title
	post.Body = req.Body
	if err := u.postRepo.Update(post); err != nil {
		return nil, err
	}

	categories, err := u.resolveCategories(req.Categories)
	if err != nil {
		return nil, err
	}
	if err := u.postRepo.ReplaceCategories(post, categories); err != nil {
		return nil, err
	}

	updated, err := u.postRepo.FindByID(post.ID)
	if err != nil {
		return nil, err
	}

	u.hooks.PostSaved(updated)
	return updated, nil
}

func (u *postUsecase) DeletePost(userID, postID string) error {
	post, err := u.postRepo.FindByID(postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.AuthorID != userID {
		return ErrPostForbidden
	}

	if err := u.postRepo.Delete(postID); err != nil {
		return err
	}

	u.hooks.PostDeleted(postID)
	return nil
}

func (u *postUsecase) resolveCategories(inputs []dto.CategoryInput) ([]domain.Category, error) {
	categories := make([]domain.Category, 0, len(inputs))
	for _, input := range inputs {
		category, err := u.categoryRepo.GetOrCreate(input.Name)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *category)
	}
	return categories, nil
}
