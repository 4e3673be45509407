package records

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/LawUtilities/ADMS.API-sub014/internal/domain"
)

// CreateUser registers an actor. Users are not ledger subjects.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, &domain.User{
		ID:        s.newID(),
		Name:      domain.CollapseSpace(input.Name),
		CreatedAt: s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.InfoContext(ctx, "user created", slog.String("user_id", user.ID.String()))

	return user, nil
}
