package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/orderdesk/pkg/auth"
	"github.com/ghuser/orderdesk/pkg/logger"
	directorydomain "github.com/ghuser/orderdesk/services/directory/domain"
	"github.com/ghuser/orderdesk/services/directory/domain/models"
	"github.com/ghuser/orderdesk/services/directory/domain/repositories"
	domainsvcs "github.com/ghuser/orderdesk/services/directory/domain/services"
)

// CreateUserInput carries the fields of a new directory user.
type CreateUserInput struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
	Role            string // optional
}

// UpdateUserInput carries editable user fields. An empty Role clears the role.
type UpdateUserInput struct {
	FullName string
	Email    string
	Role     string
}

// UserService manages directory users, their roles and credentials.
type UserService struct {
	repo   repositories.UserRepository
	hasher domainsvcs.PasswordHasher
	log    logger.Logger
}

// NewUserService returns a UserService wired with the given repository and hasher.
func NewUserService(repo repositories.UserRepository, hasher domainsvcs.PasswordHasher, log logger.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, log: log}
}

// Create validates and persists a new user with an optional role.
// Returns ErrEmailTaken when the email is already registered.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*models.User, error) {
	fullName, err := models.NormalizeFullName(in.FullName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", directorydomain.ErrInvalidUser, err)
	}
	email, err := models.NormalizeEmail(in.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", directorydomain.ErrInvalidUser, err)
	}
	role, err := parseRole(in.Role)
	if err != nil {
		return nil, err
	}
	if err := domainsvcs.ValidateNewPassword(in.Password, in.ConfirmPassword); err != nil {
		return nil, fmt.Errorf("%w: %w", directorydomain.ErrInvalidUser, err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	user := models.NewUser(fullName, email, hash, role)
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	s.log.InfoContext(ctx, "user created", "target_user_id", user.ID, "role", user.RoleLabel())
	return user, nil
}

// GetByID retrieves a user. Returns ErrUserNotFound if absent.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// List returns every user ordered by full name.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Update edits name, email and role in one write.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, in UpdateUserInput) (*models.User, error) {
	fullName, err := models.NormalizeFullName(in.FullName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", directorydomain.ErrInvalidUser, err)
	}
	email, err := models.NormalizeEmail(in.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", directorydomain.ErrInvalidUser, err)
	}
	role, err := parseRole(in.Role)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	user.FullName = fullName
	user.Email = email
	user.Role = role

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.log.InfoContext(ctx, "user updated", "target_user_id", user.ID, "role", user.RoleLabel())
	return user, nil
}

// AssignRole replaces the user's role. role must name a known role.
func (s *UserService) AssignRole(ctx context.Context, id uuid.UUID, role string) (*models.User, error) {
	parsed, err := parseRole(role)
	if err != nil {
		return nil, err
	}
	if parsed == "" {
		return nil, fmt.Errorf("%w: please select a role", directorydomain.ErrInvalidRole)
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	user.Role = parsed

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("assign role: %w", err)
	}

	s.log.InfoContext(ctx, "role assigned", "target_user_id", user.ID, "role", string(parsed))
	return user, nil
}

// ChangePassword sets a new password for the user identified by email.
func (s *UserService) ChangePassword(ctx context.Context, email, password, confirm string) error {
	normalized, err := models.NormalizeEmail(email)
	if err != nil {
		return fmt.Errorf("%w: %w", directorydomain.ErrInvalidUser, err)
	}
	if err := domainsvcs.ValidateNewPassword(password, confirm); err != nil {
		return fmt.Errorf("%w: %w", directorydomain.ErrInvalidUser, err)
	}

	user, err := s.repo.GetByEmail(ctx, normalized)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	user.PasswordHash = hash

	if err := s.repo.Update(ctx, user); err != nil {
		return fmt.Errorf("change password: %w", err)
	}

	s.log.InfoContext(ctx, "password changed", "target_user_id", user.ID)
	return nil
}

// Delete removes user id on behalf of actorID. Admins cannot delete themselves.
func (s *UserService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if actorID == id {
		return directorydomain.ErrCannotDeleteSelf
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	s.log.InfoContext(ctx, "user deleted", "target_user_id", id)
	return nil
}

// Authenticate checks email and password. Unknown emails and wrong passwords
// both yield ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	normalized, err := models.NormalizeEmail(email)
	if err != nil {
		return nil, directorydomain.ErrInvalidCredentials
	}

	user, err := s.repo.GetByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, directorydomain.ErrUserNotFound) {
			s.log.WarnContext(ctx, "login failed", "reason", "unknown email")
			return nil, directorydomain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		s.log.WarnContext(ctx, "login failed", "reason", "password mismatch", "target_user_id", user.ID)
		return nil, directorydomain.ErrInvalidCredentials
	}
	return user, nil
}

// LoadPrincipal implements auth.PrincipalLoader.
func (s *UserService) LoadPrincipal(ctx context.Context, id uuid.UUID) (auth.Principal, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, directorydomain.ErrUserNotFound) {
			return auth.Principal{}, auth.ErrPrincipalGone
		}
		return auth.Principal{}, fmt.Errorf("load principal: %w", err)
	}
	return user.Principal(), nil
}

func parseRole(s string) (auth.Role, error) {
	role, err := auth.ParseRole(s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", directorydomain.ErrInvalidRole, err)
	}
	return role, nil
}
