package backend

import (
	"container/heap"
	"context"
	"errors"
	"image"
	"sync"
	"time"
)

type cachedImage struct {
	val image.Image
	ttl time.Duration

	// unix nanos
	expiresAt    int64
	lastAccessed int64
}

// An in-memory cache for decoded dish thumbnails with the following eviction strategy:
//  1. If there are fewer than MinSize items in the cache, none will be evicted
//  2. If a new addition would make the cache exceed MaxSize, an item will be immediately evicted
//     2a. in this case, evict the LRU expired item or if none expired, the LRU item
//  3. If the size of the cache is between MaxSize and MinSize, expired items will be periodically evicted
//     3a. in this case, again the least recently used expired items will be evicted first
type ImageCache struct {
	MinSize    int
	MaxSize    int
	DefaultTTL time.Duration

	// called after each periodic eviction pass
	OnEvictTaskRan func()

	mu    sync.Mutex
	cache map[string]cachedImage
	now   func() time.Time
}

var ErrNotFound = errors.New("item not found")

func (i *ImageCache) Init(ctx context.Context, evictionInterval time.Duration) {
	i.init()
	go i.periodicallyEvict(ctx, evictionInterval)
}

func (i *ImageCache) init() {
	i.cache = make(map[string]cachedImage)
	if i.now == nil {
		i.now = time.Now
	}
}

func (i *ImageCache) SetWithTTL(key string, val image.Image, ttl time.Duration) {
	i.mu.Lock()
	defer i.mu.Unlock()

	now := i.now()
	if _, ok := i.cache[key]; !ok && len(i.cache) >= i.MaxSize {
		i.evictOne(now.UnixNano())
	}
	i.cache[key] = cachedImage{
		val:          val,
		ttl:          ttl,
		expiresAt:    now.Add(ttl).UnixNano(),
		lastAccessed: now.UnixNano(),
	}
}

func (i *ImageCache) Set(key string, val image.Image) {
	i.SetWithTTL(key, val, i.DefaultTTL)
}

func (i *ImageCache) Has(key string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	_, ok := i.cache[key]
	return ok
}

func (i *ImageCache) Len() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.cache)
}

func (i *ImageCache) Get(key string) (image.Image, error) {
	return i.get(key, func(*cachedImage, time.Time) {})
}

// GetExtendTTL gets the image if it exists and extends its expiry to now + ttl
// iff the image would expire before then.
func (i *ImageCache) GetExtendTTL(key string, ttl time.Duration) (image.Image, error) {
	return i.get(key, func(v *cachedImage, now time.Time) {
		if exp := now.Add(ttl).UnixNano(); v.expiresAt < exp {
			v.expiresAt = exp
		}
	})
}

func (i *ImageCache) get(key string, update func(*cachedImage, time.Time)) (image.Image, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	v, ok := i.cache[key]
	if !ok {
		return nil, ErrNotFound
	}
	now := i.now()
	v.lastAccessed = now.UnixNano()
	update(&v, now)
	i.cache[key] = v
	return v.val, nil
}

func (i *ImageCache) Clear() {
	i.mu.Lock()
	defer i.mu.Unlock()
	clear(i.cache)
}

// must be called with the lock held
func (i *ImageCache) evictOne(now int64) {
	var lruKey, lruExpiredKey string
	lruTime, lruExpiredTime := now+1, now+1
	for k, v := range i.cache {
		if v.expiresAt < now && v.lastAccessed < lruExpiredTime {
			lruExpiredTime = v.lastAccessed
			lruExpiredKey = k
		}
		if v.lastAccessed < lruTime {
			lruTime = v.lastAccessed
			lruKey = k
		}
	}
	if lruExpiredKey != "" {
		delete(i.cache, lruExpiredKey)
	} else {
		delete(i.cache, lruKey)
	}
}

func (i *ImageCache) periodicallyEvict(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	for {
		select {
		case <-ctx.Done():
			t.Stop()
			return
		case <-t.C:
			i.EvictExpired()
			if i.OnEvictTaskRan != nil {
				i.OnEvictTaskRan()
			}
		}
	}
}

type expiredItem struct {
	key          string
	lastAccessed int64
}

type expiredHeap []expiredItem

func (h expiredHeap) Len() int           { return len(h) }
func (h expiredHeap) Less(i, j int) bool { return h[i].lastAccessed < h[j].lastAccessed }
func (h expiredHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *expiredHeap) Push(x any) {
	*h = append(*h, x.(expiredItem))
}

func (h *expiredHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// EvictExpired evicts least recently used expired items from the cache
// until there are no more expired items or the cache contains MinSize elements.
func (i *ImageCache) EvictExpired() {
	i.mu.Lock()
	defer i.mu.Unlock()

	count := len(i.cache)
	if count <= i.MinSize {
		return
	}
	now := i.now().UnixNano()
	expired := make(expiredHeap, 0, count-i.MinSize)
	for k, v := range i.cache {
		if v.expiresAt < now {
			expired = append(expired, expiredItem{key: k, lastAccessed: v.lastAccessed})
		}
	}
	heap.Init(&expired)
	for count > i.MinSize && len(expired) > 0 {
		delete(i.cache, heap.Pop(&expired).(expiredItem).key)
		count--
	}
}
