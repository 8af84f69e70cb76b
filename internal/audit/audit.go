package audit

import (
	"context"

	"github.com/weiawesome/wes-social/pkg/log"
)

// Audit actions.
const (
	ActionRegister      = "account.register"
	ActionLogin         = "account.login"
	ActionLoginFailed   = "account.login_failed"
	ActionUpdateAccount = "account.update"
	ActionDeleteAccount = "account.delete"
	ActionCreatePost    = "post.create"
	ActionUpdatePost    = "post.update"
	ActionDeletePost    = "post.delete"
	ActionLike          = "like.create"
	ActionUnlike        = "like.delete"
	ActionFollow        = "follow.create"
	ActionUnfollow      = "follow.delete"
	ActionReply         = "reply.create"
	ActionUpdateReply   = "reply.update"
	ActionDeleteReply   = "reply.delete"
)

// Field constants for audit entries.
const (
	FieldAction = "action"
	FieldDetail = "detail"
)

// Log emits a structured audit log entry via the context logger.
func Log(ctx context.Context, action, accountID, targetID, msg string) {
	l := log.Ctx(ctx)
	e := l.Info().
		Str(log.FieldLogType, log.LogTypeAudit).
		Str(FieldAction, action).
		Str(log.FieldUserID, accountID)
	if targetID != "" {
		e = e.Str(log.FieldTargetID, targetID)
	}
	e.Msg(msg)
}

// LogWithDetail emits an audit log with extra detail field.
func LogWithDetail(ctx context.Context, action, accountID, detail, msg string) {
	l := log.Ctx(ctx)
	l.Info().
		Str(log.FieldLogType, log.LogTypeAudit).
		Str(FieldAction, action).
		Str(log.FieldUserID, accountID).
		Str(FieldDetail, detail).
		Msg(msg)
}
