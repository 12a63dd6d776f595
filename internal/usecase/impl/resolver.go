package impl

import (
	"context"
	"fmt"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrUnknownIntentKind is returned for intents with an unrecognized kind.
var ErrUnknownIntentKind = errors.New("unknown intent kind")

// audienceResolver turns an intent into the concrete set of endpoints to
// deliver to. Resolution happens at dispatch time, so endpoints registered
// after the triggering action but before dispatch are included.
type audienceResolver struct {
	endpointRepo repository.EndpointRepository
	taskRepo     repository.TaskRepository
}

func newAudienceResolver(endpointRepo repository.EndpointRepository, taskRepo repository.TaskRepository) *audienceResolver {
	return &audienceResolver{
		endpointRepo: endpointRepo,
		taskRepo:     taskRepo,
	}
}

// Resolve returns the audience for an intent. An empty audience is a valid
// result, not an error.
func (r *audienceResolver) Resolve(ctx context.Context, intent *entity.Intent) ([]*entity.Endpoint, error) {
	switch intent.Kind {
	case entity.IntentBroadcast:
		if intent.ExcludeUserID == uuid.Nil {
			endpoints, err := r.endpointRepo.FindAll(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve broadcast audience: %w", err)
			}

			return endpoints, nil
		}

		endpoints, err := r.endpointRepo.FindAllExcept(ctx, intent.ExcludeUserID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve broadcast audience: %w", err)
		}

		return endpoints, nil

	case entity.IntentDirect:
		if len(intent.UserIDs) == 0 {
			return nil, nil
		}

		endpoints, err := r.endpointRepo.FindByUsers(ctx, intent.UserIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve direct audience: %w", err)
		}

		return endpoints, nil

	case entity.IntentTaskAssignees:
		userIDs, err := r.taskRepo.FindAssigneeUserIDs(ctx, intent.TaskID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve task assignees: %w", err)
		}
		userIDs = excludeUser(userIDs, intent.ExcludeUserID)
		if len(userIDs) == 0 {
			return nil, nil
		}

		endpoints, err := r.endpointRepo.FindByUsers(ctx, userIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve assignee audience: %w", err)
		}

		return endpoints, nil

	case entity.IntentChatMessage:
		endpoints, err := r.endpointRepo.FindChatEnabledExcept(ctx, intent.ExcludeUserID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve chat audience: %w", err)
		}

		return endpoints, nil
	}

	return nil, errors.Wrapf(ErrUnknownIntentKind, "kind %q", intent.Kind)
}

// excludeUser drops the excluded user from an assignee list. An assignee who
// triggered the action should not be notified about their own change.
func excludeUser(userIDs []uuid.UUID, exclude uuid.UUID) []uuid.UUID {
	if exclude == uuid.Nil {
		return userIDs
	}

	filtered := userIDs[:0]
	for _, id := range userIDs {
		if id != exclude {
			filtered = append(filtered, id)
		}
	}

	return filtered
}
