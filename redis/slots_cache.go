package redis

import (
	"encoding/json"
	"fmt"
	"time"
)

// Resolved slot lists are cached briefly per business+date. The TTL is
// short because the "today" list shifts with the clock; bookings also
// invalidate their date explicitly.
const slotCacheTTL = 60 * time.Second

func slotCacheKey(businessID uint, date string) string {
	return fmt.Sprintf("slots:%d:%s", businessID, date)
}

// CacheSlots stores a resolved slot list. No-op when redis is not initialized.
func CacheSlots(businessID uint, date string, slots []string) {
	if Client == nil {
		return
	}
	data, err := json.Marshal(slots)
	if err != nil {
		return
	}
	Client.Set(Ctx, slotCacheKey(businessID, date), data, slotCacheTTL)
}

// GetCachedSlots returns the cached slot list and whether it was present.
func GetCachedSlots(businessID uint, date string) ([]string, bool) {
	if Client == nil {
		return nil, false
	}
	data, err := Client.Get(Ctx, slotCacheKey(businessID, date)).Bytes()
	if err != nil {
		return nil, false
	}
	var slots []string
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

// InvalidateSlots drops the cached list for one business+date, called
// after a booking lands on that date.
func InvalidateSlots(businessID uint, date string) {
	if Client == nil {
		return
	}
	Client.Del(Ctx, slotCacheKey(businessID, date))
}
