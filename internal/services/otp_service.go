package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/raghunathreddymustur/bike-mechanic-discovery/domain"
)

// OTPServiceImpl implements domain.OTPService using Redis persistence.
// Redis TTLs enforce the code lifetime independent of application logic,
// so a process restart can never extend a code's validity window.
type OTPServiceImpl struct {
	smsSender   domain.NotificationSender
	emailSender domain.NotificationSender
	redisClient *redis.Client
	config      OTPConfig
	logger      *slog.Logger
	now         func() time.Time
}

type OTPConfig struct {
	Length          int
	TTL             time.Duration
	MaxAttempts     int
	RateLimitWindow time.Duration
	RateLimitMax    int
}

// verifyScript performs the compare phase of verification atomically so
// that two concurrent correct submissions cannot both succeed, and a
// failed attempt's increment is never lost to a race. Return values:
// 1 = match (record consumed), 0 = mismatch (attempt recorded),
// -1 = no live code.
//
// On the final allowed failure the code key is deleted but the attempts
// key is kept as an exhaustion marker, so the next submission reports
// "too many attempts" rather than "not found".
var verifyScript = redis.NewScript(`
local stored = redis.call('GET', KEYS[1])
if not stored then
  return -1
end
if stored == ARGV[1] then
  redis.call('DEL', KEYS[1], KEYS[2])
  return 1
end
local attempts = redis.call('INCR', KEYS[2])
if attempts >= tonumber(ARGV[2]) then
  redis.call('DEL', KEYS[1])
end
return 0
`)

// NewOTPService creates a Redis-backed OTP service. The sender used for
// dispatch is chosen per identity kind: SMS for phones, email otherwise.
func NewOTPService(smsSender, emailSender domain.NotificationSender, redisClient *redis.Client, config OTPConfig, logger *slog.Logger) domain.OTPService {
	return &OTPServiceImpl{
		smsSender:   smsSender,
		emailSender: emailSender,
		redisClient: redisClient,
		config:      config,
		logger:      logger,
		now:         time.Now,
	}
}

func codeKey(identity string) string     { return "otp:code:" + identity }
func attemptsKey(identity string) string { return "otp:att:" + identity }
func issuanceKey(identity string) string { return "otp:iss:" + identity }

// Send implements domain.OTPService. The rate limit is evaluated before
// any code is generated; a refused send stores nothing and dispatches
// nothing. Dispatch failure is logged but never rolls back the stored
// code: the code stays valid and verifiable for its full window.
func (s *OTPServiceImpl) Send(ctx context.Context, identity string, kind domain.IdentityKind) error {
	limited, err := s.rateLimited(ctx, identity)
	if err != nil {
		return fmt.Errorf("otp rate limit check: %w", err)
	}
	if limited {
		return domain.ErrOTPRateLimited
	}

	code, err := s.generateCode()
	if err != nil {
		return fmt.Errorf("generate otp code: %w", err)
	}

	now := s.now()
	pipe := s.redisClient.TxPipeline()
	// SET overwrites any prior record: an atomic replace, never a window
	// with two live codes for the same identity.
	pipe.Set(ctx, codeKey(identity), code, s.config.TTL)
	pipe.Set(ctx, attemptsKey(identity), 0, s.config.TTL)
	pipe.ZAdd(ctx, issuanceKey(identity), redis.Z{
		Score:  float64(now.UnixMilli()),
		Member: strconv.FormatInt(now.UnixNano(), 10),
	})
	pipe.Expire(ctx, issuanceKey(identity), s.config.RateLimitWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store otp: %w", err)
	}

	sender, destination := s.smsSender, "+91"+identity
	if kind == domain.IdentityEmail {
		sender, destination = s.emailSender, identity
	}
	if err := sender.Send(destination, code); err != nil {
		s.logger.Error("otp dispatch failed", "identity", identity, "err", err)
	}

	return nil
}

// Verify implements domain.OTPService.
func (s *OTPServiceImpl) Verify(ctx context.Context, identity, code string) error {
	attempts, err := s.redisClient.Get(ctx, attemptsKey(identity)).Int()
	if err == redis.Nil {
		return domain.ErrOTPNotFound
	}
	if err != nil {
		return fmt.Errorf("read otp attempts: %w", err)
	}

	if attempts >= s.config.MaxAttempts {
		s.redisClient.Del(ctx, codeKey(identity), attemptsKey(identity))
		return domain.ErrOTPMaxAttempts
	}

	res, err := verifyScript.Run(ctx, s.redisClient,
		[]string{codeKey(identity), attemptsKey(identity)},
		code, s.config.MaxAttempts).Int()
	if err != nil {
		return fmt.Errorf("verify otp: %w", err)
	}

	switch res {
	case 1:
		return nil
	case 0:
		return domain.ErrOTPInvalid
	default:
		return domain.ErrOTPNotFound
	}
}

// rateLimited counts issuance events in the trailing window. The log is
// append-only history kept apart from the live code record; replacing a
// code does not erase its issuance event, which is what makes the
// 3-per-window limit enforceable at all.
func (s *OTPServiceImpl) rateLimited(ctx context.Context, identity string) (bool, error) {
	key := issuanceKey(identity)
	cutoff := s.now().Add(-s.config.RateLimitWindow).UnixMilli()

	if err := s.redisClient.ZRemRangeByScore(ctx, key, "-inf", strconv.FormatInt(cutoff, 10)).Err(); err != nil {
		return false, err
	}
	count, err := s.redisClient.ZCard(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return count >= int64(s.config.RateLimitMax), nil
}

// generateCode returns a uniformly random numeric code of the configured
// length. Leading zeros are kept: the code is always exactly Length
// digits.
func (s *OTPServiceImpl) generateCode() (string, error) {
	digits := make([]byte, s.config.Length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
