package community

import (
	"time"

	"github.com/google/uuid"

	"github.com/residence/backend/internal/domain/community"
)

// CreatePostRequest is the payload for publishing a post
type CreatePostRequest struct {
	AuthorID uuid.UUID `json:"author_id" binding:"required"`
	Content  string    `json:"content" binding:"required"`
	ImageUrl *string   `json:"image_url" binding:"omitempty,max=500"`
	GifUrl   *string   `json:"gif_url" binding:"omitempty,max=500"`
}

// UpdatePostRequest is the payload for editing a post
type UpdatePostRequest struct {
	Content  string  `json:"content" binding:"required"`
	ImageUrl *string `json:"image_url" binding:"omitempty,max=500"`
	GifUrl   *string `json:"gif_url" binding:"omitempty,max=500"`
}

// AddPostCommentRequest is the payload for commenting on a post
type AddPostCommentRequest struct {
	AuthorID uuid.UUID `json:"author_id" binding:"required"`
	Content  string    `json:"content" binding:"required"`
}

// PostCommentResponse is the API representation of a post comment
type PostCommentResponse struct {
	ID         uuid.UUID  `json:"id"`
	PostID     uuid.UUID  `json:"post_id"`
	AuthorID   uuid.UUID  `json:"author_id"`
	AuthorName string     `json:"author_name,omitempty"`
	Content    string     `json:"content"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// ToPostCommentResponse maps a comment entity to its response
func ToPostCommentResponse(c *community.Comment) PostCommentResponse {
	resp := PostCommentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.Author != nil {
		resp.AuthorName = c.Author.FirstName + " " + c.Author.LastName
	}
	return resp
}

// PostResponse is the API representation of a post. LikedByViewer is only
// meaningful when the feed was fetched for a specific viewer.
type PostResponse struct {
	ID            uuid.UUID             `json:"id"`
	ResidenceID   uuid.UUID             `json:"residence_id"`
	AuthorID      uuid.UUID             `json:"author_id"`
	AuthorName    string                `json:"author_name,omitempty"`
	Content       string                `json:"content"`
	ImageUrl      *string               `json:"image_url,omitempty"`
	GifUrl        *string               `json:"gif_url,omitempty"`
	LikeCount     int                   `json:"like_count"`
	LikedByViewer bool                  `json:"liked_by_viewer"`
	Comments      []PostCommentResponse `json:"comments,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     *time.Time            `json:"updated_at,omitempty"`
}

// ToPostResponse maps a post entity to its response, computing like state
// for the given viewer.
func ToPostResponse(p *community.Post, viewerID uuid.UUID) PostResponse {
	resp := PostResponse{
		ID:            p.ID,
		ResidenceID:   p.ResidenceID,
		AuthorID:      p.AuthorID,
		Content:       p.Content,
		ImageUrl:      p.ImageUrl,
		GifUrl:        p.GifUrl,
		LikeCount:     len(p.Likes),
		LikedByViewer: viewerID != uuid.Nil && p.LikedBy(viewerID),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.Author != nil {
		resp.AuthorName = p.Author.FirstName + " " + p.Author.LastName
	}
	for i := range p.Comments {
		resp.Comments = append(resp.Comments, ToPostCommentResponse(&p.Comments[i]))
	}
	return resp
}
