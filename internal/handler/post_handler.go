package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/weiawesome/wes-social/internal/domain"
	"github.com/weiawesome/wes-social/pkg/middleware"
	"github.com/weiawesome/wes-social/pkg/response"
)

func (h *Handler) CreatePost(c *gin.Context) {
	var req domain.PostRequest
	if err := bindJSON(c, &req); err != nil {
		response.Fail(c, err)
		return
	}

	post, err := h.posts.Create(c.Request.Context(), middleware.GetUserID(c), req.Content)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, post)
}

func (h *Handler) ListPosts(c *gin.Context) {
	posts, err := h.posts.List(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, posts)
}

func (h *Handler) GetPost(c *gin.Context) {
	post, err := h.posts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, post)
}

func (h *Handler) UpdatePost(c *gin.Context) {
	var req domain.PostRequest
	if err := bindJSON(c, &req); err != nil {
		response.Fail(c, err)
		return
	}

	post, err := h.posts.Update(c.Request.Context(), middleware.GetUserID(c), c.Param("id"), req.Content)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, post)
}

func (h *Handler) DeletePost(c *gin.Context) {
	if err := h.posts.Delete(c.Request.Context(), middleware.GetUserID(c), c.Param("id")); err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, gin.H{"message": "post deleted"})
}
