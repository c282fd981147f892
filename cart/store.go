package cart

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store persists one serialized cart per client. Implementations overwrite
// the whole record on every save; there is no per-item update.
type Store interface {
	Load(ctx context.Context, cartID string) (*Cart, error)
	Save(ctx context.Context, cartID string, c *Cart) error
	Clear(ctx context.Context, cartID string) error
}

// RedisStore keeps each cart as a single JSON list under "cart:<id>".
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) key(cartID string) string {
	return "cart:" + cartID
}

// Load reads and validates the stored cart. A missing record yields an empty
// cart. A record that does not parse as a list, or whose items do not survive
// migration, is discarded entirely and the cart resets to empty — a corrupt
// record is never partially adopted.
func (s *RedisStore) Load(ctx context.Context, cartID string) (*Cart, error) {
	raw, err := s.rdb.Get(ctx, s.key(cartID)).Bytes()
	if err == redis.Nil {
		return New(), nil
	}
	if err != nil {
		return nil, err
	}

	items, ok := decodeItems(raw)
	if !ok {
		log.Printf("⚠️ Discarding corrupt cart record for %s", cartID)
		if err := s.rdb.Del(ctx, s.key(cartID)).Err(); err != nil {
			return nil, err
		}
		return New(), nil
	}

	return &Cart{Items: items}, nil
}

// Save serializes the full cart, replacing the previous record.
func (s *RedisStore) Save(ctx context.Context, cartID string, c *Cart) error {
	data, err := json.Marshal(c.Items)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.key(cartID), data, s.ttl).Err()
}

// Clear removes the persisted record.
func (s *RedisStore) Clear(ctx context.Context, cartID string) error {
	return s.rdb.Del(ctx, s.key(cartID)).Err()
}

// decodeItems parses a stored payload into cart items. The payload must be a
// JSON list of objects; each object is migrated field by field with
// mistyped or missing fields coerced to defaults. Any element that is not an
// object fails the whole payload.
func decodeItems(raw []byte) ([]Item, bool) {
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, false
	}
	list, ok := payload.([]any)
	if !ok {
		return nil, false
	}

	items := make([]Item, 0, len(list))
	for _, el := range list {
		obj, ok := el.(map[string]any)
		if !ok {
			return nil, false
		}
		items = append(items, migrateItem(obj))
	}
	return items, true
}

// migrateItem coerces one stored object to the current item shape: strings
// default to "", prices to 0, quantity to 1, packages to an empty list.
func migrateItem(obj map[string]any) Item {
	it := Item{
		ID:              asString(obj["id"]),
		Name:            asString(obj["name"]),
		Description:     asString(obj["description"]),
		Price:           asFloat(obj["price"], 0),
		Quantity:        int(asFloat(obj["quantity"], 1)),
		Image:           asString(obj["image"]),
		Category:        asString(obj["category"]),
		Packages:        []Package{},
		SelectedPackage: asString(obj["selectedPackage"]),
		TotalPrice:      asFloat(obj["totalPrice"], 0),
	}

	if raw, ok := obj["packages"].([]any); ok {
		for _, el := range raw {
			pkg, ok := el.(map[string]any)
			if !ok {
				continue
			}
			it.Packages = append(it.Packages, Package{
				ID:    asString(pkg["id"]),
				Name:  asString(pkg["name"]),
				Price: asFloat(pkg["price"], 0),
			})
		}
	}

	return it
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asFloat(v any, def float64) float64 {
	f, ok := v.(float64)
	if !ok {
		return def
	}
	return f
}
