package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/petproject/community/internal/community/domain"
	"github.com/petproject/community/internal/community/store"
	"github.com/petproject/community/pkg/cryptox"
	"github.com/petproject/community/pkg/idx"
	"github.com/petproject/community/pkg/petsdk"
	"github.com/petproject/community/pkg/slogx"
)

// DefaultAdminUsername is granted admin authority at registration.
const DefaultAdminUsername = "ssar"

type UserService struct {
	Store      store.Store
	Hasher     cryptox.PasswordHasher
	AuthEmails *AuthEmailService

	// AdminUsername registers as admin; everyone else is a guest.
	AdminUsername string
}

func (s *UserService) adminUsername() string {
	if s.AdminUsername == "" {
		return DefaultAdminUsername
	}
	return s.AdminUsername
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// Join registers a user. The auth key is checked first, by value only,
// then the fields, then uniqueness. No row is written on any failure.
func (s *UserService) Join(ctx context.Context, req petsdk.JoinRequest) (domain.User, error) {
	log := slogx.FromContext(ctx)
	req.Normalize()

	ok, err := s.AuthEmails.IsValid(ctx, req.AuthKey)
	if err != nil {
		log.Error("failed to check auth key", slog.Any("error", err))
		return domain.User{}, err
	}
	if !ok {
		log.Warn("join attempted with unknown auth key", slog.String("username", req.Username))
		return domain.User{}, ErrAuthKeyMismatch
	}

	if err := validation(req.Validate()); err != nil {
		return domain.User{}, err
	}

	users := s.Store.Users()
	checks := []struct {
		exists func(context.Context, string) (bool, error)
		value  string
		err    error
	}{
		{users.ExistsUsername, req.Username, ErrUsernameTaken},
		{users.ExistsEmail, req.Email, ErrEmailTaken},
		{users.ExistsPhone, req.Phone, ErrPhoneTaken},
	}
	for _, c := range checks {
		taken, err := c.exists(ctx, c.value)
		if err != nil {
			log.Error("failed to check uniqueness", slog.Any("error", err))
			return domain.User{}, err
		}
		if taken {
			log.Warn("join rejected", slog.String("username", req.Username), slog.Any("reason", c.err))
			return domain.User{}, c.err
		}
	}

	hash, err := s.Hasher.Hash(req.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	authority := domain.AuthorityGuest
	if req.Username == s.adminUsername() {
		authority = domain.AuthorityAdmin
	}

	u := domain.User{
		ID:           idx.New().String(),
		Username:     req.Username,
		PasswordHash: hash,
		Nickname:     req.Nickname,
		Phone:        req.Phone,
		Email:        req.Email,
		Birth:        req.Birth,
		Authority:    authority,
	}
	if err := users.CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrDuplicate
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("user registered",
		slog.String("user_id", u.ID),
		slog.String("username", u.Username),
		slog.String("authority", string(u.Authority)),
	)
	return u, nil
}

// Login checks the credentials and installs the user in sess.
func (s *UserService) Login(ctx context.Context, sess SessionContext, req petsdk.LoginRequest) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if err := validation(req.Validate()); err != nil {
		return domain.User{}, err
	}

	u, err := s.Store.Users().GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("login with unknown username", slog.String("username", req.Username))
			return domain.User{}, ErrInvalidCredentials
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(req.Password, u.PasswordHash); err != nil {
		log.Warn("login with wrong password", slog.String("user_id", u.ID))
		return domain.User{}, ErrInvalidCredentials
	}

	if err := sess.Set(ctx, u); err != nil {
		log.Error("failed to store session", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("user logged in", slog.String("user_id", u.ID))
	return u, nil
}

// Logout discards the whole session, not just the user slot.
func (s *UserService) Logout(ctx context.Context, sess SessionContext) error {
	return sess.Clear(ctx)
}

// Me returns the session user, re-read from the store.
func (s *UserService) Me(ctx context.Context, sess SessionContext) (domain.User, error) {
	u, err := requireLogin(sess)
	if err != nil {
		return domain.User{}, err
	}
	return s.Store.Users().GetUserByID(ctx, u.ID)
}

// FindUsername recovers a username from nickname, birth date and email.
func (s *UserService) FindUsername(ctx context.Context, req petsdk.IDFindRequest) (string, error) {
	if err := validation(req.Validate()); err != nil {
		return "", err
	}

	u, err := s.Store.Users().FindUserByIdentity(ctx, req.Name, req.Birth, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	return u.Username, nil
}

// StartPasswordReset verifies the identity fields and remembers the user in
// sess until ChangePassword runs.
func (s *UserService) StartPasswordReset(ctx context.Context, sess SessionContext, req petsdk.PwFindRequest) error {
	log := slogx.FromContext(ctx)

	if err := validation(req.Validate()); err != nil {
		return err
	}

	u, err := s.Store.Users().GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if u.Nickname != req.Name || u.Birth != req.Birth || u.Email != req.Email {
		log.Warn("password reset identity mismatch", slog.String("user_id", u.ID))
		return ErrUserNotFound
	}

	return sess.SetValue(ctx, SessionKeyPendingReset, u.ID)
}

// ChangePassword sets the password of the user recorded by
// StartPasswordReset and clears the pending slot.
func (s *UserService) ChangePassword(ctx context.Context, sess SessionContext, req petsdk.PwChangeRequest) error {
	log := slogx.FromContext(ctx)

	userID := sess.Value(SessionKeyPendingReset)
	if userID == "" {
		return ErrNoPendingReset
	}
	if err := validation(req.Validate()); err != nil {
		return err
	}

	hash, err := s.Hasher.Hash(req.Password)
	if err != nil {
		return err
	}
	if err := s.Store.Users().UpdatePasswordHash(ctx, userID, hash); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		log.Error("failed to update password", slog.Any("error", err))
		return err
	}

	log.Info("password changed", slog.String("user_id", userID))
	return sess.DeleteValue(ctx, SessionKeyPendingReset)
}

// UpdateProfile changes the session user's own profile. The key must be the
// latest one issued for the new email address.
func (s *UserService) UpdateProfile(
	ctx context.Context,
	sess SessionContext,
	id string,
	req petsdk.UserUpdateRequest,
) (domain.User, error) {
	log := slogx.FromContext(ctx)

	actor, err := requireLogin(sess)
	if err != nil {
		return domain.User{}, err
	}
	if actor.ID != id {
		log.Warn("profile update for another user",
			slog.String("user_id", actor.ID),
			slog.String("target_id", id),
		)
		return domain.User{}, ErrForbidden
	}
	if err := validation(req.Validate()); err != nil {
		return domain.User{}, err
	}

	ok, err := s.AuthEmails.IsLatest(ctx, req.Email, req.AuthKey)
	if err != nil {
		return domain.User{}, err
	}
	if !ok {
		return domain.User{}, ErrAuthKeyMismatch
	}

	users := s.Store.Users()
	if req.Email != actor.Email {
		if taken, err := users.ExistsEmail(ctx, req.Email); err != nil {
			return domain.User{}, err
		} else if taken {
			return domain.User{}, ErrEmailTaken
		}
	}
	if req.Phone != actor.Phone {
		if taken, err := users.ExistsPhone(ctx, req.Phone); err != nil {
			return domain.User{}, err
		} else if taken {
			return domain.User{}, ErrPhoneTaken
		}
	}

	hash, err := s.Hasher.Hash(req.Password)
	if err != nil {
		return domain.User{}, err
	}

	err = users.UpdateProfile(ctx, actor.ID, domain.ProfileUpdate{
		Nickname:     req.Nickname,
		Phone:        req.Phone,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrDuplicate
		}
		log.Error("failed to update profile", slog.Any("error", err))
		return domain.User{}, err
	}

	updated, err := users.GetUserByID(ctx, actor.ID)
	if err != nil {
		return domain.User{}, err
	}
	if err := sess.Set(ctx, updated); err != nil {
		return domain.User{}, err
	}

	log.Info("profile updated", slog.String("user_id", actor.ID))
	return updated, nil
}

// PromoteAdmin grants admin authority to id. Only admins may promote.
func (s *UserService) PromoteAdmin(ctx context.Context, sess SessionContext, id string) error {
	log := slogx.FromContext(ctx)

	actor, err := requireLogin(sess)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		log.Warn("non-admin attempted promotion", slog.String("user_id", actor.ID), slog.String("target_id", id))
		return ErrNotAdmin
	}

	if err := s.Store.Users().UpdateAuthority(ctx, id, domain.AuthorityAdmin); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	log.Info("user promoted to admin", slog.String("user_id", id), slog.String("by", actor.ID))
	return nil
}
