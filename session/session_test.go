package session

import (
	"sync"
	"testing"
)

func TestStore_Empty(t *testing.T) {
	st := NewStore()
	if s, ok := st.Current(); ok || s != nil {
		t.Errorf("Current() = %v, %v, want nil, false", s, ok)
	}
}

func TestStore_Initialize(t *testing.T) {
	st := NewStore()
	s := st.Initialize("http://h:3001/", "K")

	if s.BaseURL != "http://h:3001" {
		t.Errorf("BaseURL = %q, want %q", s.BaseURL, "http://h:3001")
	}
	if s.APIKey != "K" {
		t.Errorf("APIKey = %q, want %q", s.APIKey, "K")
	}
	if s.Client() == nil || s.Client().BaseURL() != "http://h:3001" {
		t.Errorf("Client().BaseURL() = %v, want %q", s.Client(), "http://h:3001")
	}

	cur, ok := st.Current()
	if !ok || cur != s {
		t.Errorf("Current() = %v, %v, want %v, true", cur, ok, s)
	}
}

func TestStore_StripsOneSlash(t *testing.T) {
	st := NewStore()
	if got := st.Initialize("http://h//", "K").BaseURL; got != "http://h/" {
		t.Errorf("BaseURL = %q, want %q", got, "http://h/")
	}
}

func TestStore_Idempotent(t *testing.T) {
	st := NewStore()
	a := st.Initialize("http://h", "K")
	b := st.Initialize("http://h", "K")

	if a.BaseURL != b.BaseURL || a.APIKey != b.APIKey {
		t.Errorf("Initialize twice = %+v, %+v, want equal", a, b)
	}
	cur, _ := st.Current()
	if cur.BaseURL != "http://h" || cur.APIKey != "K" {
		t.Errorf("Current() = %+v", cur)
	}
}

func TestStore_Replace(t *testing.T) {
	st := NewStore()
	st.Initialize("http://a", "K1")
	st.Initialize("http://b", "K2")

	cur, ok := st.Current()
	if !ok {
		t.Fatal("Current() returned false")
	}
	if cur.BaseURL != "http://b" || cur.APIKey != "K2" {
		t.Errorf("Current() = {%s %s}, want {http://b K2}", cur.BaseURL, cur.APIKey)
	}
}

func TestStore_ConcurrentReplace(t *testing.T) {
	st := NewStore()
	pairs := map[string]string{"http://a": "KA", "http://b": "KB"}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		for base, key := range pairs {
			wg.Add(2)
			go func(base, key string) {
				defer wg.Done()
				st.Initialize(base, key)
			}(base, key)
			go func() {
				defer wg.Done()
				if s, ok := st.Current(); ok && pairs[s.BaseURL] != s.APIKey {
					t.Errorf("torn session: %s %s", s.BaseURL, s.APIKey)
				}
			}()
		}
	}
	wg.Wait()
}
