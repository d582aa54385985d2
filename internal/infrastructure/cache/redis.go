package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// BackupCache keeps the latest progress snapshot of a profile in redis.
type BackupCache struct {
	client    *redis.Client
	profileID string
	ttl       time.Duration
}

func NewBackupCache(client *redis.Client, profileID string, ttl time.Duration) *BackupCache {
	return &BackupCache{client: client, profileID: profileID, ttl: ttl}
}

func (c *BackupCache) key() string {
	return "progress_backup:" + c.profileID
}

func (c *BackupCache) Backup(ctx context.Context, snapshot []byte) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, c.key(), snapshot, c.ttl)
		pipe.Set(ctx, c.key()+":at", time.Now().UTC().Format(time.RFC3339), c.ttl)
		return nil
	})
	return err
}
