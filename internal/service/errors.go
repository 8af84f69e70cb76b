package service

import (
	"context"
	"errors"

	"github.com/weiawesome/wes-social/internal/repository"
	"github.com/weiawesome/wes-social/pkg/apperr"
	"github.com/weiawesome/wes-social/pkg/log"
	"github.com/weiawesome/wes-social/pkg/pubsub"
)

// lookupError classifies a failed lookup by id. A well-formed id with no row
// is NotFound; a malformed id or any other store failure is a database error.
func lookupError(err error, entity string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperr.NotFoundf("%s not found", entity)
	case errors.Is(err, repository.ErrMalformedID):
		return apperr.Database("invalid "+entity+" id", err)
	default:
		return apperr.Database("failed to load "+entity, err)
	}
}

// requireActor checks that the authenticated account still exists. Tokens
// outlive a deleted account until they expire.
func requireActor(ctx context.Context, accounts repository.AccountRepository, accountID string) error {
	_, err := accounts.GetByID(ctx, accountID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, repository.ErrMalformedID):
		return apperr.Unauthorized("account no longer exists")
	default:
		return apperr.Database("failed to load account", err)
	}
}

// notOwned is returned when the actor does not own the entity. It is reported
// exactly like a missing row.
func notOwned(entity string) error {
	return apperr.NotFoundf("%s not found", entity)
}

// publish sends a relationship event. Failures are logged and never fail the
// operation that triggered them.
func publish(ctx context.Context, pub pubsub.Publisher, channel, eventType, key, actorID string, payload interface{}) {
	l := log.Ctx(ctx)

	event, err := pubsub.NewEvent(eventType, key, actorID, payload)
	if err != nil {
		l.Warn().Err(err).Str("event_type", eventType).Msg("failed to build event")
		return
	}
	if err := pub.Publish(ctx, channel, event); err != nil {
		l.Warn().Err(err).Str("event_type", eventType).Str("channel", channel).Msg("failed to publish event")
	}
}
