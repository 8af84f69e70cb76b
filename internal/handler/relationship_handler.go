package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/weiawesome/wes-social/internal/domain"
	"github.com/weiawesome/wes-social/pkg/middleware"
	"github.com/weiawesome/wes-social/pkg/response"
)

// CreateLike handles liking a post.
func (h *Handler) CreateLike(c *gin.Context) {
	var req domain.CreateLikeRequest
	if err := bindJSON(c, &req); err != nil {
		response.Fail(c, err)
		return
	}

	like, err := h.likes.Create(c.Request.Context(), middleware.GetUserID(c), req.PostID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, like)
}

func (h *Handler) ListLikes(c *gin.Context) {
	likes, err := h.likes.List(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, likes)
}

func (h *Handler) GetLike(c *gin.Context) {
	like, err := h.likes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, like)
}

func (h *Handler) DeleteLike(c *gin.Context) {
	if err := h.likes.Delete(c.Request.Context(), middleware.GetUserID(c), c.Param("id")); err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, gin.H{"message": "like deleted"})
}

// CreateFollow handles following an account.
func (h *Handler) CreateFollow(c *gin.Context) {
	var req domain.CreateFollowRequest
	if err := bindJSON(c, &req); err != nil {
		response.Fail(c, err)
		return
	}

	follow, err := h.follows.Create(c.Request.Context(), middleware.GetUserID(c), req.FolloweeID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, follow)
}

func (h *Handler) ListFollows(c *gin.Context) {
	follows, err := h.follows.List(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, follows)
}

func (h *Handler) GetFollow(c *gin.Context) {
	follow, err := h.follows.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, follow)
}

func (h *Handler) DeleteFollow(c *gin.Context) {
	if err := h.follows.Delete(c.Request.Context(), middleware.GetUserID(c), c.Param("id")); err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, gin.H{"message": "follow deleted"})
}

// CreateReply handles replying to a post.
func (h *Handler) CreateReply(c *gin.Context) {
	var req domain.CreateReplyRequest
	if err := bindJSON(c, &req); err != nil {
		response.Fail(c, err)
		return
	}

	reply, err := h.replies.Create(c.Request.Context(), middleware.GetUserID(c), req.PostID, req.Content)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, reply)
}

func (h *Handler) ListReplies(c *gin.Context) {
	replies, err := h.replies.List(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, replies)
}

func (h *Handler) GetReply(c *gin.Context) {
	reply, err := h.replies.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, reply)
}

func (h *Handler) UpdateReply(c *gin.Context) {
	var req domain.UpdateReplyRequest
	if err := bindJSON(c, &req); err != nil {
		response.Fail(c, err)
		return
	}

	reply, err := h.replies.Update(c.Request.Context(), middleware.GetUserID(c), c.Param("id"), req.Content)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, reply)
}

func (h *Handler) DeleteReply(c *gin.Context) {
	if err := h.replies.Delete(c.Request.Context(), middleware.GetUserID(c), c.Param("id")); err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, gin.H{"message": "reply deleted"})
}
