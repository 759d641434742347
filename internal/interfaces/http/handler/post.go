package handler

import (
	"github.com/gin-gonic/gin"

	communityapp "github.com/residence/backend/internal/application/community"
)

// PostHandler exposes the community feed within a residence
type PostHandler struct {
	BaseHandler
	service *communityapp.Service
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(service *communityapp.Service) *PostHandler {
	return &PostHandler{service: service}
}

// Create handles POST /residences/:residenceId/posts
func (h *PostHandler) Create(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}

	var req communityapp.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.CreatePost(c.Request.Context(), resID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get handles GET /residences/:residenceId/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid post ID")
		return
	}

	viewerID, _ := currentUserID(c)

	resp, err := h.service.GetPost(c.Request.Context(), resID, id, viewerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List handles GET /residences/:residenceId/posts
func (h *PostHandler) List(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}

	viewerID, _ := currentUserID(c)

	page, err := h.service.ListPosts(c.Request.Context(), resID, viewerID, bindPagination(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paged(c, page)
}

// Update handles PUT /residences/:residenceId/posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid post ID")
		return
	}

	var req communityapp.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.UpdatePost(c.Request.Context(), resID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete handles DELETE /residences/:residenceId/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid post ID")
		return
	}

	if err := h.service.DeletePost(c.Request.Context(), resID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Like handles POST /residences/:residenceId/posts/:id/likes. The liker is
// the authenticated user.
func (h *PostHandler) Like(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid post ID")
		return
	}
	userID, err := currentUserID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user identity")
		return
	}

	if err := h.service.LikePost(c.Request.Context(), resID, id, userID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Unlike handles DELETE /residences/:residenceId/posts/:id/likes
func (h *PostHandler) Unlike(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid post ID")
		return
	}
	userID, err := currentUserID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user identity")
		return
	}

	if err := h.service.UnlikePost(c.Request.Context(), resID, id, userID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// AddComment handles POST /residences/:residenceId/posts/:id/comments
func (h *PostHandler) AddComment(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid post ID")
		return
	}

	var req communityapp.AddPostCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.AddComment(c.Request.Context(), resID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// GetComments handles GET /residences/:residenceId/posts/:id/comments
func (h *PostHandler) GetComments(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid post ID")
		return
	}

	resp, err := h.service.GetComments(c.Request.Context(), resID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// DeleteComment handles DELETE /residences/:residenceId/posts/comments/:commentId
func (h *PostHandler) DeleteComment(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}
	commentID, err := parseUUIDParam(c, "commentId")
	if err != nil {
		h.BadRequest(c, "Invalid comment ID")
		return
	}

	if err := h.service.DeleteComment(c.Request.Context(), resID, commentID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
