package community

import (
	"github.com/google/uuid"

	"github.com/residence/backend/internal/domain/housing"
	"github.com/residence/backend/internal/domain/shared"
)

// Post is a community feed entry authored by a resident.
type Post struct {
	shared.BaseEntity
	AuthorID uuid.UUID `gorm:"type:uuid;not null;index"`
	Content  string    `gorm:"type:text;not null"`
	ImageUrl *string   `gorm:"type:varchar(500)"`
	GifUrl   *string   `gorm:"type:varchar(500)"`

	Author   *housing.Resident `gorm:"foreignKey:AuthorID"`
	Likes    []Like            `gorm:"foreignKey:PostID"`
	Comments []Comment         `gorm:"foreignKey:PostID"`
}

// TableName returns the table name for GORM
func (Post) TableName() string {
	return "posts"
}

// NewPost creates a post.
func NewPost(residenceID, authorID uuid.UUID, content string, imageURL, gifURL *string) *Post {
	return &Post{
		BaseEntity: shared.NewBaseEntity(residenceID),
		AuthorID:   authorID,
		Content:    content,
		ImageUrl:   imageURL,
		GifUrl:     gifURL,
	}
}

// LikedBy reports whether the loaded likes contain one by the given user.
func (p *Post) LikedBy(userID uuid.UUID) bool {
	for _, like := range p.Likes {
		if like.UserID == userID {
			return true
		}
	}
	return false
}

// Like marks that a user liked a post. At most one non-deleted like may
// exist per (post, user) pair; a partial unique index enforces this in the
// store, not just in the service.
type Like struct {
	shared.BaseEntity
	PostID uuid.UUID `gorm:"type:uuid;not null;index:idx_post_likes_post_user"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_post_likes_post_user"`
}

// TableName returns the table name for GORM
func (Like) TableName() string {
	return "post_likes"
}

// NewLike records a like, inheriting the post's tenant.
func NewLike(p *Post, userID uuid.UUID) *Like {
	return &Like{
		BaseEntity: shared.NewBaseEntity(p.ResidenceID),
		PostID:     p.ID,
		UserID:     userID,
	}
}

// Comment is a reply on a post.
type Comment struct {
	shared.BaseEntity
	PostID   uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorID uuid.UUID `gorm:"type:uuid;not null"`
	Content  string    `gorm:"type:text;not null"`

	Author *housing.Resident `gorm:"foreignKey:AuthorID"`
}

// TableName returns the table name for GORM
func (Comment) TableName() string {
	return "post_comments"
}

// NewComment adds a comment to a post, inheriting the post's tenant.
func NewComment(p *Post, authorID uuid.UUID, content string) *Comment {
	return &Comment{
		BaseEntity: shared.NewBaseEntity(p.ResidenceID),
		PostID:     p.ID,
		AuthorID:   authorID,
		Content:    content,
	}
}
