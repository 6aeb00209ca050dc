package img2sketch

import (
	"fmt"
	"sync"
	"testing"
)

func TestOrderedMapPreservesInsertionOrder(t *testing.T) {
	om := NewOrderedMap[string, int]()
	om.Set("c", 3)
	om.Set("a", 1)
	om.Set("b", 2)
	om.Set("a", 10)

	keys := om.Keys()
	want := []string{"c", "a", "b"}
	if len(keys) != len(want) {
		t.Fatalf("Keys() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}

	vals := om.Values()
	if vals[1] != 10 {
		t.Errorf("replaced value = %d, want 10", vals[1])
	}
	if om.Len() != 3 {
		t.Errorf("Len() = %d, want 3", om.Len())
	}

	if _, ok := om.Get("missing"); ok {
		t.Error("Get(missing) reported present")
	}

	var visited []string
	om.Iterate(func(k string, v int) {
		visited = append(visited, fmt.Sprintf("%s=%d", k, v))
	})
	if got := fmt.Sprint(visited); got != "[c=3 a=10 b=2]" {
		t.Errorf("Iterate visited %s", got)
	}
}

func TestOrderedMapKeysIsCopy(t *testing.T) {
	om := NewOrderedMap[int, string]()
	om.Set(1, "one")
	keys := om.Keys()
	keys[0] = 99
	if om.Keys()[0] != 1 {
		t.Error("mutating Keys() result changed the map")
	}
}

func TestOrderedMapConcurrentSet(t *testing.T) {
	om := NewOrderedMap[int, int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			om.Set(i, i*i)
		}()
	}
	wg.Wait()

	if om.Len() != 50 {
		t.Errorf("Len() = %d, want 50", om.Len())
	}
}
