package community

import (
	"context"

	"github.com/google/uuid"

	"github.com/residence/backend/internal/domain/shared"
)

// PostRepository adds the eager-loading post reads.
type PostRepository interface {
	shared.TenantRepository[Post]
	FindWithLikesAndComments(ctx context.Context, residenceID, id uuid.UUID) (*Post, error)
	FindByResidenceWithDetails(ctx context.Context, residenceID uuid.UUID) ([]Post, error)
	FindByAuthor(ctx context.Context, residenceID, authorID uuid.UUID) ([]Post, error)
}

// LikeRepository persists post likes.
type LikeRepository interface {
	shared.TenantRepository[Like]
	FindByPostAndUser(ctx context.Context, postID, userID uuid.UUID) (*Like, error)
	CountByPost(ctx context.Context, postID uuid.UUID) (int64, error)
}

// CommentRepository persists post comments.
type CommentRepository interface {
	shared.TenantRepository[Comment]
	FindByPost(ctx context.Context, residenceID, postID uuid.UUID) ([]Comment, error)
}
