package rdb

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Deletes the key only while it still holds our value
var unlockScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisLock is a single key lock that expires on its own,
// so a crashed holder can't keep it forever
type RedisLock struct {
	rdb    *Service
	key    string
	owner  string
	expiry time.Duration
}

// NewRedisLock creates a lock on name, owner has to be unique per holder
func (s *Service) NewRedisLock(name, owner string, expiry time.Duration) *RedisLock {
	return &RedisLock{
		rdb:    s,
		key:    Key("lock:" + name),
		owner:  owner,
		expiry: expiry,
	}
}

// TryLock takes the lock if it's free and reports whether it did
func (l *RedisLock) TryLock(ctx context.Context) (bool, error) {
	return l.rdb.Client.SetNX(ctx, l.key, l.owner, l.expiry).Result()
}

// Held reports whether the lock is still ours
func (l *RedisLock) Held(ctx context.Context) (bool, error) {
	owner, err := l.rdb.Client.Get(ctx, l.key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return owner == l.owner, nil
}

// Unlock releases the lock, a lock taken over by someone else is left alone
func (l *RedisLock) Unlock(ctx context.Context) error {
	return unlockScript.Run(ctx, l.rdb.Client, []string{l.key}, l.owner).Err()
}
