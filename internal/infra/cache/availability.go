package cache

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "availability"

type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *AvailabilityCache) Lookup(ctx context.Context, lines []inventory.RoomLine, stay inventory.DateRange) (bool, bool, error) {
	val, err := c.client.Get(ctx, Key(lines, stay)).Result()
	if errors.Is(err, redis.Nil) {
		return false, false, nil
	}
	if err != nil {
		return false, false, errs.Wrap(err, "redis get availability")
	}

	available, err := strconv.ParseBool(val)
	if err != nil {
		return false, false, errs.Wrapf(err, "cached availability %q", val)
	}
	return available, true, nil
}

func (c *AvailabilityCache) Store(ctx context.Context, lines []inventory.RoomLine, stay inventory.DateRange, available bool) error {
	if err := c.client.Set(ctx, Key(lines, stay), strconv.FormatBool(available), c.ttl).Err(); err != nil {
		return errs.Wrap(err, "redis set availability")
	}
	return nil
}

// Key is stable for equal requests because lines are normalized (sorted,
// merged) before they reach the cache.
func Key(lines []inventory.RoomLine, stay inventory.DateRange) string {
	var b strings.Builder
	b.WriteString(keyPrefix)
	b.WriteByte(':')
	b.WriteString(stay.CheckIn().String())
	b.WriteByte(':')
	b.WriteString(stay.CheckOut().String())
	for _, l := range lines {
		b.WriteByte(':')
		b.WriteString(l.RoomTypeID.String())
		b.WriteByte('x')
		b.WriteString(strconv.Itoa(l.Quantity))
	}
	return b.String()
}
