package community

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/residence/backend/internal/domain/community"
	"github.com/residence/backend/internal/domain/housing"
	"github.com/residence/backend/internal/domain/shared"
)

// Service handles the community feed: posts, likes and comments
type Service struct {
	postRepo     community.PostRepository
	likeRepo     community.LikeRepository
	commentRepo  community.CommentRepository
	residentRepo housing.ResidentRepository
}

// NewService creates a new community Service
func NewService(postRepo community.PostRepository, likeRepo community.LikeRepository, commentRepo community.CommentRepository, residentRepo housing.ResidentRepository) *Service {
	return &Service{
		postRepo:     postRepo,
		likeRepo:     likeRepo,
		commentRepo:  commentRepo,
		residentRepo: residentRepo,
	}
}

// CreatePost publishes a post to the residence feed
func (s *Service) CreatePost(ctx context.Context, residenceID uuid.UUID, req CreatePostRequest) (*PostResponse, error) {
	exists, err := s.residentRepo.Exists(ctx, residenceID, req.AuthorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shared.NewDomainError("NOT_FOUND", "Author not found")
	}

	post := community.NewPost(residenceID, req.AuthorID, req.Content, req.ImageUrl, req.GifUrl)
	if err := s.postRepo.Add(ctx, post); err != nil {
		return nil, err
	}

	response := ToPostResponse(post, uuid.Nil)
	return &response, nil
}

// GetPost retrieves a post with its likes and comments
func (s *Service) GetPost(ctx context.Context, residenceID, id, viewerID uuid.UUID) (*PostResponse, error) {
	post, err := s.postRepo.FindWithLikesAndComments(ctx, residenceID, id)
	if err != nil {
		return nil, err
	}

	response := ToPostResponse(post, viewerID)
	return &response, nil
}

// ListPosts returns one page of the residence feed, newest first, with the
// like state computed for the viewer.
func (s *Service) ListPosts(ctx context.Context, residenceID, viewerID uuid.UUID, p shared.Pagination) (shared.PagedResult[PostResponse], error) {
	posts, err := s.postRepo.FindByResidenceWithDetails(ctx, residenceID)
	if err != nil {
		return shared.PagedResult[PostResponse]{}, err
	}

	page := shared.Paginate(posts, p)
	return shared.MapPage(page, func(post community.Post) PostResponse {
		return ToPostResponse(&post, viewerID)
	}), nil
}

// UpdatePost edits a post's content
func (s *Service) UpdatePost(ctx context.Context, residenceID, id uuid.UUID, req UpdatePostRequest) (*PostResponse, error) {
	post, err := s.postRepo.FindByID(ctx, residenceID, id)
	if err != nil {
		return nil, err
	}

	post.Content = req.Content
	post.ImageUrl = req.ImageUrl
	post.GifUrl = req.GifUrl

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	response := ToPostResponse(post, uuid.Nil)
	return &response, nil
}

// DeletePost soft-deletes a post
func (s *Service) DeletePost(ctx context.Context, residenceID, id uuid.UUID) error {
	if _, err := s.postRepo.FindByID(ctx, residenceID, id); err != nil {
		return err
	}
	return s.postRepo.Delete(ctx, residenceID, id)
}

// LikePost records a like. Liking a post the user already likes is a
// conflict, not an idempotent no-op.
func (s *Service) LikePost(ctx context.Context, residenceID, postID, userID uuid.UUID) error {
	post, err := s.postRepo.FindByID(ctx, residenceID, postID)
	if err != nil {
		return err
	}

	_, err = s.likeRepo.FindByPostAndUser(ctx, postID, userID)
	if err == nil {
		return shared.NewDomainError("ALREADY_EXISTS", "Post already liked")
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	like := community.NewLike(post, userID)
	return s.likeRepo.Add(ctx, like)
}

// UnlikePost removes a like. Unliking a post the user never liked is an
// error the caller sees as not found.
func (s *Service) UnlikePost(ctx context.Context, residenceID, postID, userID uuid.UUID) error {
	if _, err := s.postRepo.FindByID(ctx, residenceID, postID); err != nil {
		return err
	}

	like, err := s.likeRepo.FindByPostAndUser(ctx, postID, userID)
	if err != nil {
		return err
	}

	return s.likeRepo.Delete(ctx, residenceID, like.ID)
}

// AddComment appends a comment to a post
func (s *Service) AddComment(ctx context.Context, residenceID, postID uuid.UUID, req AddPostCommentRequest) (*PostCommentResponse, error) {
	post, err := s.postRepo.FindByID(ctx, residenceID, postID)
	if err != nil {
		return nil, err
	}

	exists, err := s.residentRepo.Exists(ctx, residenceID, req.AuthorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shared.NewDomainError("NOT_FOUND", "Author not found")
	}

	comment := community.NewComment(post, req.AuthorID, req.Content)
	if err := s.commentRepo.Add(ctx, comment); err != nil {
		return nil, err
	}

	response := ToPostCommentResponse(comment)
	return &response, nil
}

// GetComments returns a post's comments, oldest first
func (s *Service) GetComments(ctx context.Context, residenceID, postID uuid.UUID) ([]PostCommentResponse, error) {
	if _, err := s.postRepo.FindByID(ctx, residenceID, postID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.FindByPost(ctx, residenceID, postID)
	if err != nil {
		return nil, err
	}

	responses := make([]PostCommentResponse, len(comments))
	for i := range comments {
		responses[i] = ToPostCommentResponse(&comments[i])
	}
	return responses, nil
}

// DeleteComment soft-deletes a post comment
func (s *Service) DeleteComment(ctx context.Context, residenceID, commentID uuid.UUID) error {
	if _, err := s.commentRepo.FindByID(ctx, residenceID, commentID); err != nil {
		return err
	}
	return s.commentRepo.Delete(ctx, residenceID, commentID)
}
