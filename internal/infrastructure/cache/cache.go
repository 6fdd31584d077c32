package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"offsetledger-backend/internal/domain"

	"github.com/redis/go-redis/v9"
)

const projectKeyPrefix = "project:"
const projectTTL = 5 * time.Minute

// Snapshots is a Redis read cache for project snapshots. Writers invalidate;
// a nil *Snapshots is a no-op so the cache stays optional.
type Snapshots struct {
	Rdb *redis.Client
}

// GetProject returns the cached snapshot, or nil on miss or any cache error.
func (s *Snapshots) GetProject(ctx context.Context, projectID uint64) *domain.Project {
	if s == nil || s.Rdb == nil {
		return nil
	}
	b, err := s.Rdb.Get(ctx, projectKey(projectID)).Bytes()
	if err != nil {
		return nil
	}
	var p domain.Project
	if err := json.Unmarshal(b, &p); err != nil {
		return nil
	}
	return &p
}

// SetProject stores a snapshot with a TTL. Cache errors are dropped; the DB
// stays the source of truth.
func (s *Snapshots) SetProject(ctx context.Context, p *domain.Project) {
	if s == nil || s.Rdb == nil || p == nil {
		return
	}
	b, err := json.Marshal(p)
	if err != nil {
		return
	}
	_ = s.Rdb.Set(ctx, projectKey(p.ProjectID), b, projectTTL).Err()
}

// InvalidateProject drops the snapshot after any mutation of the project's
// counters or status.
func (s *Snapshots) InvalidateProject(ctx context.Context, projectID uint64) {
	if s == nil || s.Rdb == nil {
		return
	}
	_ = s.Rdb.Del(ctx, projectKey(projectID)).Err()
}

func projectKey(id uint64) string {
	return fmt.Sprintf("%s%d", projectKeyPrefix, id)
}
