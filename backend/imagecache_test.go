package backend

import (
	"image"
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time { return f.t }

func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestCache(min, max int, ttl time.Duration) (*ImageCache, *fakeClock) {
	clk := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := &ImageCache{MinSize: min, MaxSize: max, DefaultTTL: ttl, now: clk.now}
	c.init()
	return c, clk
}

func testImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 1, 1))
}

func TestImageCache_SetGet(t *testing.T) {
	c, _ := newTestCache(1, 3, time.Minute)
	img := testImage()
	c.Set("a", img)
	got, err := c.Get("a")
	if err != nil || got != img {
		t.Errorf("got (%v, %v), want the stored image", got, err)
	}
	if _, err := c.Get("missing"); err != ErrNotFound {
		t.Errorf("got %v, want ErrNotFound", err)
	}
	c.Clear()
	if c.Has("a") {
		t.Error("expected cache to be empty after Clear")
	}
}

func TestImageCache_EvictsLRUWhenFull(t *testing.T) {
	c, clk := newTestCache(1, 3, time.Minute)
	for _, k := range []string{"a", "b", "c"} {
		c.Set(k, testImage())
		clk.advance(time.Second)
	}
	c.Get("a") // b is now least recently used
	clk.advance(time.Second)
	c.Set("d", testImage())

	if c.Has("b") {
		t.Error("expected b to be evicted")
	}
	for _, k := range []string{"a", "c", "d"} {
		if !c.Has(k) {
			t.Errorf("expected %s to remain", k)
		}
	}
}

func TestImageCache_EvictsExpiredFirst(t *testing.T) {
	c, clk := newTestCache(1, 3, time.Minute)
	c.Set("a", testImage())
	clk.advance(time.Second)
	c.SetWithTTL("b", testImage(), time.Second)
	clk.advance(time.Second)
	c.Set("c", testImage())
	clk.advance(5 * time.Second)
	c.Get("b") // b is expired but most recently used
	c.Set("d", testImage())

	if c.Has("b") {
		t.Error("expected expired b to be evicted before LRU a")
	}
	if !c.Has("a") {
		t.Error("expected a to remain")
	}
}

func TestImageCache_EvictExpiredKeepsMinSize(t *testing.T) {
	c, clk := newTestCache(2, 10, time.Second)
	for _, k := range []string{"a", "b", "c", "d"} {
		c.Set(k, testImage())
		clk.advance(time.Millisecond)
	}
	clk.advance(time.Minute)
	c.GetExtendTTL("a", time.Hour)
	c.EvictExpired()

	if n := c.Len(); n != 2 {
		t.Fatalf("got %d items, want 2", n)
	}
	if !c.Has("a") {
		t.Error("a had its TTL extended and should remain")
	}
	if !c.Has("d") {
		t.Error("expected the most recently used expired item d to remain")
	}
}
