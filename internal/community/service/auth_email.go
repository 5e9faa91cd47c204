package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/petproject/community/internal/community/domain"
	"github.com/petproject/community/internal/community/store"
	"github.com/petproject/community/pkg/cryptox"
	"github.com/petproject/community/pkg/mailx"
	"github.com/petproject/community/pkg/petsdk"
	"github.com/petproject/community/pkg/slogx"
)

// AuthEmailService issues and checks email verification keys. Each email
// has a single slot; issuing again replaces the previous key. Only the key
// fingerprint is stored.
type AuthEmailService struct {
	Store  store.Store
	Mailer mailx.Mailer
}

// IssueOrReplace generates a key for email, stores its fingerprint and mails
// it. The key is returned for callers that deliver it themselves; handlers
// must never echo it.
func (s *AuthEmailService) IssueOrReplace(ctx context.Context, email string) (string, error) {
	log := slogx.FromContext(ctx)

	email = strings.TrimSpace(email)
	if err := validation(petsdk.AuthEmailRequest{Email: email}.Validate()); err != nil {
		return "", err
	}

	key, err := cryptox.GenerateNumericCode()
	if err != nil {
		log.Error("failed to generate auth key", slog.Any("error", err))
		return "", err
	}

	err = s.Store.AuthEmails().UpsertAuthEmail(ctx, domain.AuthEmail{
		Email:    email,
		KeyHash:  cryptox.FingerprintToken(key),
		IssuedAt: time.Now(),
	})
	if err != nil {
		log.Error("failed to store auth key", slog.Any("error", err))
		return "", err
	}

	if s.Mailer != nil {
		if err := s.Mailer.Send(ctx, mailx.VerificationMessage(email, key)); err != nil {
			log.Error("failed to send auth key", slog.String("email", email), slog.Any("error", err))
			return "", err
		}
	}

	log.Info("auth key issued", slog.String("email", email))
	return key, nil
}

// IsValid reports whether key is the current key of any email. The key is
// not bound to an address here; registration relies on this check alone.
func (s *AuthEmailService) IsValid(ctx context.Context, key string) (bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return false, nil
	}
	return s.Store.AuthEmails().ExistsKeyHash(ctx, cryptox.FingerprintToken(key))
}

// IsLatest reports whether key is the latest key issued for email.
func (s *AuthEmailService) IsLatest(ctx context.Context, email, key string) (bool, error) {
	rec, err := s.Store.AuthEmails().GetAuthEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	got := cryptox.FingerprintToken(strings.TrimSpace(key))
	return subtle.ConstantTimeCompare([]byte(got), []byte(rec.KeyHash)) == 1, nil
}
