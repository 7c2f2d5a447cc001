package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	sessionKeyPrefix = "fittrack-session||"
	lockKeySuffix    = "||lock"
	DefaultLockTTL   = 30 * time.Second
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionBusy     = errors.New("session is busy with another step")
)

// unlockScript deletes the lock only while it still holds the caller's token, so
// a step that outlived its lock cannot release the lock of the next step.
var unlockScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisStore keeps sessions as JSON under a TTL, so abandoned sessions expire
// on their own.
type RedisStore struct {
	redisClient *redis.Client
	ttl         time.Duration
	lockTTL     time.Duration
	newToken    func() string
}

func NewRedisStore(redisClient *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		redisClient: redisClient,
		ttl:         ttl,
		lockTTL:     DefaultLockTTL,
		newToken:    uuid.NewString,
	}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func lockKey(id string) string {
	return sessionKeyPrefix + id + lockKeySuffix
}

func (rs *RedisStore) Get(ctx context.Context, id string) (_ *Stepper, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.session.get")
	span.SetAttributes(attribute.String("session.id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	data, err := rs.redisClient.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	var stepper Stepper
	if err := json.Unmarshal(data, &stepper); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &stepper, nil
}

func (rs *RedisStore) Save(ctx context.Context, stepper *Stepper) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.session.save")
	span.SetAttributes(attribute.String("session.id", stepper.ID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	data, err := json.Marshal(stepper)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := rs.redisClient.Set(ctx, sessionKey(stepper.ID), string(data), rs.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Lock takes the in-flight flag of a session. Only one step of a session runs
// at a time; a second one gets ErrSessionBusy until unlock is called or the
// lock expires.
func (rs *RedisStore) Lock(ctx context.Context, id string) (unlock func(), err error) {
	token := rs.newToken()
	ok, err := rs.redisClient.SetNX(ctx, lockKey(id), token, rs.lockTTL).Result()
	if err != nil {
		return nil, fmt.Errorf("lock session: %w", err)
	}
	if !ok {
		return nil, ErrSessionBusy
	}

	return func() {
		// the request context may be gone already
		released, err := unlockScript.Run(context.Background(), rs.redisClient, []string{lockKey(id)}, token).Int64()
		if err != nil {
			log.Errorf("unlock session %s: %s", id, err)
			return
		}
		if released == 0 {
			log.Warnf("unlock session %s: lock expired before the step ended", id)
		}
	}, nil
}
