package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/residence/backend/internal/domain/community"
	"github.com/residence/backend/internal/domain/shared"
)

// GormPostRepository persists community feed posts.
type GormPostRepository struct {
	*GormRepository[community.Post, *community.Post]
}

// NewGormPostRepository creates a post repository.
func NewGormPostRepository(db *gorm.DB) community.PostRepository {
	return &GormPostRepository{
		GormRepository: NewGormRepository[community.Post, *community.Post](db),
	}
}

func postDetailPreloads(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Author", "is_deleted = ?", false).
		Preload("Likes", "is_deleted = ?", false).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_deleted = ?", false).Order("created_at")
		}).
		Preload("Comments.Author", "is_deleted = ?", false)
}

// FindWithLikesAndComments returns a post with author, likes and the
// comment thread preloaded.
func (r *GormPostRepository) FindWithLikesAndComments(ctx context.Context, residenceID, id uuid.UUID) (*community.Post, error) {
	var entity community.Post
	err := postDetailPreloads(r.scoped(ctx, residenceID)).
		Where("id = ?", id).
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return &entity, nil
}

// FindByResidenceWithDetails returns the residence feed, newest first,
// with authors, likes and comments preloaded.
func (r *GormPostRepository) FindByResidenceWithDetails(ctx context.Context, residenceID uuid.UUID) ([]community.Post, error) {
	var entities []community.Post
	err := postDetailPreloads(r.scoped(ctx, residenceID)).
		Order("created_at DESC").
		Find(&entities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return entities, nil
}

// FindByAuthor returns one resident's posts, newest first.
func (r *GormPostRepository) FindByAuthor(ctx context.Context, residenceID, authorID uuid.UUID) ([]community.Post, error) {
	var entities []community.Post
	err := r.scoped(ctx, residenceID).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&entities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by author: %w", err)
	}
	return entities, nil
}

// GormLikeRepository persists post likes.
type GormLikeRepository struct {
	*GormRepository[community.Like, *community.Like]
}

// NewGormLikeRepository creates a like repository.
func NewGormLikeRepository(db *gorm.DB) community.LikeRepository {
	return &GormLikeRepository{
		GormRepository: NewGormRepository[community.Like, *community.Like](db),
	}
}

// FindByPostAndUser returns the live like one user placed on one post.
func (r *GormLikeRepository) FindByPostAndUser(ctx context.Context, postID, userID uuid.UUID) (*community.Like, error) {
	var entity community.Like
	err := r.DB().WithContext(ctx).
		Where("post_id = ? AND user_id = ? AND is_deleted = ?", postID, userID, false).
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find like: %w", err)
	}
	return &entity, nil
}

// CountByPost counts the live likes on a post.
func (r *GormLikeRepository) CountByPost(ctx context.Context, postID uuid.UUID) (int64, error) {
	var count int64
	err := r.DB().WithContext(ctx).
		Model(&community.Like{}).
		Where("post_id = ? AND is_deleted = ?", postID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}

// GormPostCommentRepository persists post comments.
type GormPostCommentRepository struct {
	*GormRepository[community.Comment, *community.Comment]
}

// NewGormPostCommentRepository creates a post comment repository.
func NewGormPostCommentRepository(db *gorm.DB) community.CommentRepository {
	return &GormPostCommentRepository{
		GormRepository: NewGormRepository[community.Comment, *community.Comment](db),
	}
}

// FindByPost returns a post's comments, oldest first.
func (r *GormPostCommentRepository) FindByPost(ctx context.Context, residenceID, postID uuid.UUID) ([]community.Comment, error) {
	var entities []community.Comment
	err := r.scoped(ctx, residenceID).
		Where("post_id = ?", postID).
		Order("created_at").
		Find(&entities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list post comments: %w", err)
	}
	return entities, nil
}
