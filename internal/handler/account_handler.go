package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/weiawesome/wes-social/internal/domain"
	"github.com/weiawesome/wes-social/pkg/log"
	"github.com/weiawesome/wes-social/pkg/middleware"
	"github.com/weiawesome/wes-social/pkg/response"
)

// Login handles credential submission.
func (h *Handler) Login(c *gin.Context) {
	ctx := c.Request.Context()
	var req domain.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		l := log.Ctx(ctx)
		l.Warn().Err(err).Msg("invalid login request")
		response.Fail(c, err)
		return
	}

	result, err := h.accounts.Login(ctx, &req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, result)
}

// Register handles account registration.
func (h *Handler) Register(c *gin.Context) {
	ctx := c.Request.Context()
	var req domain.RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		l := log.Ctx(ctx)
		l.Warn().Err(err).Msg("invalid register request")
		response.Fail(c, err)
		return
	}

	account, err := h.accounts.Register(ctx, &req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, account)
}

func (h *Handler) ListAccounts(c *gin.Context) {
	accounts, err := h.accounts.List(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, accounts)
}

// GetAccount returns an account profile with relationship counts.
func (h *Handler) GetAccount(c *gin.Context) {
	profile, err := h.accounts.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, profile)
}

func (h *Handler) UpdateAccount(c *gin.Context) {
	ctx := c.Request.Context()
	var req domain.UpdateAccountRequest
	if err := bindJSON(c, &req); err != nil {
		response.Fail(c, err)
		return
	}

	account, err := h.accounts.Update(ctx, middleware.GetUserID(c), c.Param("id"), &req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, account)
}

func (h *Handler) DeleteAccount(c *gin.Context) {
	if err := h.accounts.Delete(c.Request.Context(), middleware.GetUserID(c), c.Param("id")); err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, gin.H{"message": "account deleted"})
}

func (h *Handler) ListAccountPosts(c *gin.Context) {
	posts, err := h.posts.ListByAccount(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, posts)
}
