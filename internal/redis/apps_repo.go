package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/torsitano/torii-mock/internal/domain"
	apperrors "github.com/torsitano/torii-mock/internal/errors"
)

const (
	appKeyPrefix = "app:"

	// counterKey is the reserved row that mints custom app ids. It can never
	// collide with an app key because app keys are numeric.
	counterKey = "app:id-counter"

	// CounterSeed is the initial counter value, strictly greater than every
	// catalog registry id. The first minted custom id is CounterSeed+1.
	CounterSeed = 2000

	scanBatchSize = 100
)

const entityTypeApp = "app"

// appRecord is the persisted layout of an app row: the entity fields plus the
// entityType discriminator that keeps the table open for other item kinds.
type appRecord struct {
	domain.App
	EntityType string `json:"entityType"`
}

// AppRepo implements domain.AppRepository on a single Redis key namespace.
type AppRepo struct {
	rdb *redis.Client
}

var _ domain.AppRepository = (*AppRepo)(nil)

// NewAppRepo creates the repository on top of an established client.
func NewAppRepo(rdb *redis.Client) *AppRepo {
	return &AppRepo{rdb: rdb}
}

func appKey(id uint16) string {
	return appKeyPrefix + strconv.FormatUint(uint64(id), 10)
}

// GetApp returns the app stored under id.
func (r *AppRepo) GetApp(ctx context.Context, id uint16) (domain.App, error) {
	payload, err := r.rdb.Get(ctx, appKey(id)).Bytes()
	if err == redis.Nil {
		return domain.App{}, notFound(id)
	}
	if err != nil {
		return domain.App{}, apperrors.InternalError("failed to read app", err).WithField("app_id", id)
	}

	return decodeApp(payload, id)
}

// PutNew inserts app conditioned on the key not already existing. The SET NX
// is a single store-side operation, so at most one of any number of
// concurrent creations for the same id succeeds.
func (r *AppRepo) PutNew(ctx context.Context, app domain.App) (domain.App, error) {
	payload, err := encodeApp(app)
	if err != nil {
		return domain.App{}, err
	}

	ok, err := r.rdb.SetNX(ctx, appKey(app.ID), payload, 0).Result()
	if err != nil {
		return domain.App{}, apperrors.InternalError("failed to insert app", err).WithField("app_id", app.ID)
	}
	if !ok {
		return domain.App{}, apperrors.ConflictError(fmt.Sprintf("Already exists: %s", app.Name)).
			WithField("app_id", app.ID)
	}

	return app, nil
}

// PutUpdate unconditionally overwrites the key. The service verifies
// existence with a read before calling this.
func (r *AppRepo) PutUpdate(ctx context.Context, app domain.App) (domain.App, error) {
	payload, err := encodeApp(app)
	if err != nil {
		return domain.App{}, err
	}

	if err := r.rdb.Set(ctx, appKey(app.ID), payload, 0).Err(); err != nil {
		return domain.App{}, apperrors.InternalError("failed to update app", err).WithField("app_id", app.ID)
	}

	return app, nil
}

// DeleteApp removes the key conditioned on it existing. DEL reports how many
// keys it removed, which makes existence-check and delete one atomic call.
func (r *AppRepo) DeleteApp(ctx context.Context, id uint16) error {
	deleted, err := r.rdb.Del(ctx, appKey(id)).Result()
	if err != nil {
		return apperrors.InternalError("failed to delete app", err).WithField("app_id", id)
	}
	if deleted == 0 {
		return notFound(id)
	}
	return nil
}

// ListApps scans the full app namespace, exhausting the cursor before
// returning, and skips the reserved counter row. Cost is O(table size);
// acceptable only because the table is small and unpaginated.
func (r *AppRepo) ListApps(ctx context.Context) ([]domain.App, error) {
	var keys []string
	var cursor uint64
	for {
		batch, next, err := r.rdb.Scan(ctx, cursor, appKeyPrefix+"*", scanBatchSize).Result()
		if err != nil {
			return nil, apperrors.InternalError("failed to scan apps", err)
		}
		for _, key := range batch {
			if key == counterKey {
				continue
			}
			keys = append(keys, key)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}

	apps := make([]domain.App, 0, len(keys))
	if len(keys) == 0 {
		return apps, nil
	}

	values, err := r.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, apperrors.InternalError("failed to read apps", err)
	}

	for i, value := range values {
		// Key deleted between SCAN and MGET
		if value == nil {
			continue
		}
		raw, ok := value.(string)
		if !ok {
			return nil, apperrors.InternalError("unexpected value type in app row", nil).WithField("key", keys[i])
		}

		var record appRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, apperrors.InternalError("failed to decode app row", err).WithField("key", keys[i])
		}
		apps = append(apps, record.App)
	}

	return apps, nil
}

// NextID atomically increments the counter row and returns the new value.
// The counter must have been seeded by EnsureCounter: an increment landing at
// or below the seed means the row was missing and INCR minted from zero,
// which would collide with catalog ids.
func (r *AppRepo) NextID(ctx context.Context) (uint16, error) {
	value, err := r.rdb.Incr(ctx, counterKey).Result()
	if err != nil {
		return 0, apperrors.InternalError("failed to increment app id counter", err)
	}
	if value <= CounterSeed {
		return 0, apperrors.InternalError("app id counter is not initialized", nil).WithField("count", value)
	}
	if value > math.MaxUint16 {
		return 0, apperrors.InternalError("app id space exhausted", nil).WithField("count", value)
	}

	return uint16(value), nil
}

// EnsureCounter seeds the counter row if absent. Idempotent: the SET NX is a
// no-op when the row already exists.
func (r *AppRepo) EnsureCounter(ctx context.Context) error {
	if err := r.rdb.SetNX(ctx, counterKey, CounterSeed, 0).Err(); err != nil {
		return apperrors.InternalError("failed to seed app id counter", err)
	}
	return nil
}

func notFound(id uint16) *apperrors.Error {
	return apperrors.NotFoundError(fmt.Sprintf("Resource %d not found", id)).WithField("app_id", id)
}

func encodeApp(app domain.App) ([]byte, error) {
	payload, err := json.Marshal(appRecord{App: app, EntityType: entityTypeApp})
	if err != nil {
		return nil, apperrors.InternalError("failed to encode app", err).WithField("app_id", app.ID)
	}
	return payload, nil
}

func decodeApp(payload []byte, id uint16) (domain.App, error) {
	var record appRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return domain.App{}, apperrors.InternalError("failed to decode app row", err).WithField("app_id", id)
	}
	return record.App, nil
}
