package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/hunyar/focusflow-api/pkg/config"
	appErrors "github.com/hunyar/focusflow-api/pkg/errors"
)

// UnlockService implements the session edit gate: a shared passkey exchanged
// for a short-lived token that mutating endpoints require.
//
// This is a UX speed bump, not an access-control boundary. The passkey lives
// in the server environment and there is no user identity behind the token;
// it only keeps casual visitors from editing a shared dashboard by accident.
type UnlockService struct {
	passkeyHash []byte
	secret      []byte
	sessionTTL  time.Duration
	logger      *zap.Logger
	now         func() time.Time
}

// NewUnlockService hashes the configured passkey and returns the gate. An
// empty passkey is refused: it would let an empty unlock attempt through,
// turning the enabled gate into an open door.
func NewUnlockService(cfg config.UnlockConfig, logger *zap.Logger) (*UnlockService, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Passkey == "" {
		return nil, errors.New("unlock gate requires a passkey, set UNLOCK_PASSKEY")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Passkey), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &UnlockService{
		passkeyHash: hash,
		secret:      []byte(cfg.Secret),
		sessionTTL:  ttl,
		logger:      logger,
		now:         time.Now,
	}, nil
}

// Unlock verifies the passkey attempt and issues a session token.
func (s *UnlockService) Unlock(attempt string) (string, time.Time, error) {
	if err := bcrypt.CompareHashAndPassword(s.passkeyHash, []byte(attempt)); err != nil {
		return "", time.Time{}, appErrors.Clone(appErrors.ErrLocked, "incorrect passkey")
	}

	now := s.now()
	expiresAt := now.Add(s.sessionTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"purpose": "unlock",
		"iat":     now.Unix(),
		"exp":     expiresAt.Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to issue unlock token")
	}
	return signed, expiresAt, nil
}

// Validate checks an unlock token.
func (s *UnlockService) Validate(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return appErrors.Clone(appErrors.ErrLocked, "unlock session expired or invalid")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["purpose"] != "unlock" {
		return appErrors.Clone(appErrors.ErrLocked, "unlock session expired or invalid")
	}
	return nil
}
