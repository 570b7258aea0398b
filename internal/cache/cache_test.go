package cache

import (
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"testing"
	"time"
)

func jsonResponse(body string) *CachedResponse {
	return &CachedResponse{
		StatusCode: http.StatusOK,
		Headers:    http.Header{"Content-Type": []string{"application/json"}},
		Body:       []byte(body),
	}
}

func TestResponseCache_GetSet(t *testing.T) {
	c := New(5*time.Second, 100)

	key := MakeKey("events", url.Values{"type": {"Volunteer"}})
	c.Set(key, jsonResponse(`[{"id":"1"}]`))

	got, ok := c.Get(key)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", got.StatusCode)
	}
	if string(got.Body) != `[{"id":"1"}]` {
		t.Errorf("unexpected body: %s", got.Body)
	}
	if got.Headers.Get("Content-Type") != "application/json" {
		t.Errorf("unexpected content-type: %s", got.Headers.Get("Content-Type"))
	}
}

func TestResponseCache_Miss(t *testing.T) {
	c := New(5*time.Second, 100)

	if _, ok := c.Get("nonexistent"); ok {
		t.Error("expected cache miss")
	}
}

func TestResponseCache_TTLExpiration(t *testing.T) {
	c := New(time.Minute, 100)
	clock := time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return clock }

	c.Set("requests:", jsonResponse("[]"))
	if _, ok := c.Get("requests:"); !ok {
		t.Fatal("expected hit before expiry")
	}

	clock = clock.Add(2 * time.Minute)
	if _, ok := c.Get("requests:"); ok {
		t.Error("expected miss after expiry")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry should be removed lazily, %d left", c.Len())
	}
}

func TestMakeKey_Canonical(t *testing.T) {
	a := MakeKey("requests", url.Values{"q": {"react"}, "skill": {"any"}, "date": {""}})
	b := MakeKey("requests", url.Values{"skill": {"any"}, "q": {"react"}})
	if a != b {
		t.Errorf("expected equivalent queries to share a key: %q vs %q", a, b)
	}
	if spaced := MakeKey("requests", url.Values{"skill": {"any"}, "q": {"react "}}); spaced == a {
		t.Errorf("a trailing space changes the search and must change the key: %q", spaced)
	}
	if a != "requests:q=react&skill=any" {
		t.Errorf("unexpected key %q", a)
	}
	if MakeKey("events", nil) != "events:" {
		t.Errorf("unexpected empty-query key %q", MakeKey("events", nil))
	}
}

func TestResponseCache_InvalidateBoard(t *testing.T) {
	c := New(time.Minute, 100)

	c.Set(MakeKey("requests", url.Values{"q": {"ai"}}), jsonResponse("[]"))
	c.Set(MakeKey("requests", nil), jsonResponse("[]"))
	c.Set(MakeKey("events", nil), jsonResponse("[]"))
	c.Set(MakeKey("requestsx", nil), jsonResponse("[]"))

	c.InvalidateBoard("requests")

	if _, ok := c.Get(MakeKey("requests", nil)); ok {
		t.Error("requests entries should be gone")
	}
	if _, ok := c.Get(MakeKey("events", nil)); !ok {
		t.Error("events entries should survive")
	}
	if _, ok := c.Get(MakeKey("requestsx", nil)); !ok {
		t.Error("a board sharing a name prefix should survive")
	}
}

func TestResponseCache_MaxEntries(t *testing.T) {
	c := New(time.Minute, 3)

	for i := 0; i < 4; i++ {
		c.Set(fmt.Sprintf("events:q=%d", i), jsonResponse("[]"))
	}

	if c.Len() != 3 {
		t.Errorf("expected 3 entries, got %d", c.Len())
	}
	if _, ok := c.Get("events:q=0"); ok {
		t.Error("oldest entry should have been evicted")
	}
	if _, ok := c.Get("events:q=3"); !ok {
		t.Error("newest entry should be present")
	}
}

func TestResponseCache_OverwriteExistingKey(t *testing.T) {
	c := New(time.Minute, 1)

	c.Set("events:", jsonResponse("old"))
	c.Set("events:", jsonResponse("new"))

	got, ok := c.Get("events:")
	if !ok || string(got.Body) != "new" {
		t.Errorf("expected overwritten body, got %v", got)
	}
}

func TestResponseCache_DisabledWhenNoCapacity(t *testing.T) {
	c := New(time.Minute, 0)
	c.Set("events:", jsonResponse("[]"))

	if _, ok := c.Get("events:"); ok {
		t.Error("cache with no capacity must not store entries")
	}
}

func TestResponseCache_ThreadSafety(t *testing.T) {
	c := New(time.Minute, 50)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				key := MakeKey("requests", url.Values{"q": {fmt.Sprintf("%d-%d", i, j)}})
				c.Set(key, jsonResponse("[]"))
				c.Get(key)
				if j%10 == 0 {
					c.InvalidateBoard("requests")
				}
			}
		}(i)
	}
	wg.Wait()

	if c.Len() > 50 {
		t.Errorf("cache exceeded capacity: %d", c.Len())
	}
}
