package app

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/petproject/community/pkg/cryptox"
	"github.com/petproject/community/pkg/jwtx"
)

const sessionKeyID = "session-1"

// InitSessionKeys loads the session signing key, generating one when the
// configured file does not exist yet.
//
// With no SESSION_KEY_FILE the key lives only in memory and every restart
// invalidates all session cookies.
func InitSessionKeys(cfg Config, logger *slog.Logger) (*jwtx.EdDSASigner, *jwtx.KeySet, error) {
	var (
		pemKey []byte
		err    error
	)

	if cfg.SessionKeyFile == "" {
		pemKey, err = cryptox.NewSessionKey()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to generate session key: %w", err)
		}
		logger.Warn("SESSION_KEY_FILE not set, using an ephemeral session key")
	} else {
		pemKey, err = loadOrCreateKey(cfg.SessionKeyFile)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("session key loaded", "path", cfg.SessionKeyFile)
	}

	signer, err := jwtx.NewSignerEdDSA(sessionKeyID, pemKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load session key: %w", err)
	}
	keys := jwtx.NewKeySet()
	keys.AddSigner(signer)
	return signer, keys, nil
}

func loadOrCreateKey(path string) ([]byte, error) {
	pemKey, err := os.ReadFile(path)
	if err == nil {
		return pemKey, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read session key: %w", err)
	}

	pemKey, err = cryptox.NewSessionKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session key: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create session key dir: %w", err)
		}
	}
	if err := os.WriteFile(path, pemKey, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write session key: %w", err)
	}
	return pemKey, nil
}
