package reactions

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const cacheExpiration = 10 * time.Minute

// Cache keeps recently hydrated reaction counts in redis so a feed
// reload does not hit the store for every post.
type Cache struct {
	rdb *redis.Client
}

func NewCache(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

// Counts returns the cached count per post, skipping posts not cached.
func (c *Cache) Counts(posts []string) map[string]int {
	keys := make([]string, 0)
	for _, post := range posts {
		keys = append(keys, countKey(post))
	}

	values, err := c.rdb.MGet(context.Background(), keys...).Result()
	if err != nil {
		return map[string]int{}
	}

	result := make(map[string]int)
	for i, value := range values {
		str, ok := value.(string)
		if !ok {
			continue
		}

		count, err := strconv.Atoi(str)
		if err != nil {
			continue
		}

		result[posts[i]] = count
	}

	return result
}

// SetCounts stores freshly hydrated counts.
func (c *Cache) SetCounts(counts map[string]int) {
	for post, count := range counts {
		c.rdb.Set(context.Background(), countKey(post), count, cacheExpiration)
	}
}

// Invalidate drops a post's cached count after a reaction write.
func (c *Cache) Invalidate(post string) {
	c.rdb.Del(context.Background(), countKey(post))
}

func countKey(post string) string {
	return fmt.Sprintf("reactions/counts/%s", post)
}
