package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/aravindan888/opsml/internal/cli/types"
	"github.com/aravindan888/opsml/internal/domain"
)

// stubServer records every request and serves canned bodies per path.
type stubServer struct {
	mu       sync.Mutex
	requests []*url.URL
	routes   map[string]func(w http.ResponseWriter, r *http.Request)
	srv      *httptest.Server
}

func newStubServer(t *testing.T) *stubServer {
	t.Helper()
	s := &stubServer{routes: make(map[string]func(http.ResponseWriter, *http.Request))}
	s.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.URL)
		route := s.routes[r.URL.Path]
		s.mu.Unlock()
		if route == nil {
			http.NotFound(w, r)
			return
		}
		route(w, r)
	}))
	t.Cleanup(s.srv.Close)
	return s
}

func (s *stubServer) respond(path, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[path] = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}

func (s *stubServer) fail(path string, code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[path] = func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", code)
	}
}

func (s *stubServer) requestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// lastQuery returns the query of the most recent request to path.
func (s *stubServer) lastQuery(t *testing.T, path string) url.Values {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.requests) - 1; i >= 0; i-- {
		if s.requests[i].Path == path {
			return s.requests[i].Query()
		}
	}
	t.Fatalf("no request recorded for %s", path)
	return nil
}

func (s *stubServer) client(t *testing.T) *RegistryClient {
	t.Helper()
	c, err := NewRegistryClient(s.srv.URL, "")
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return c
}

func intPtr(n int) *int { return &n }

func TestGetSpaces(t *testing.T) {
	stub := newStubServer(t)
	stub.respond(endpointSpaces, `{"spaces":["a","b"]}`)

	resp, err := stub.client(t).GetSpaces(context.Background(), types.RegistryModel)
	if err != nil {
		t.Fatalf("GetSpaces failed: %v", err)
	}
	if !reflect.DeepEqual(resp.Spaces, []string{"a", "b"}) {
		t.Errorf("spaces = %v, want [a b]", resp.Spaces)
	}

	q := stub.lastQuery(t, endpointSpaces)
	if got := q.Get("registry_type"); got != "model" {
		t.Errorf("registry_type = %q, want model", got)
	}
}

func TestQueryComposition(t *testing.T) {
	tests := []struct {
		name       string
		call       func(c *RegistryClient) error
		path       string
		wantKeys   map[string]string
		absentKeys []string
	}{
		{
			name: "stats omits empty optionals",
			call: func(c *RegistryClient) error {
				_, err := c.GetRegistryStats(context.Background(), StatsRequest{RegistryType: types.RegistryModel})
				return err
			},
			path:       endpointRegistryStats,
			wantKeys:   map[string]string{"registry_type": "model"},
			absentKeys: []string{"search_term", "space"},
		},
		{
			name: "stats sends provided optionals verbatim",
			call: func(c *RegistryClient) error {
				_, err := c.GetRegistryStats(context.Background(), StatsRequest{
					RegistryType: types.RegistryData,
					SearchTerm:   "churn",
					Space:        "ops",
				})
				return err
			},
			path:     endpointRegistryStats,
			wantKeys: map[string]string{"registry_type": "data", "search_term": "churn", "space": "ops"},
		},
		{
			name: "page omits nil page number",
			call: func(c *RegistryClient) error {
				_, err := c.GetRegistryPage(context.Background(), PageRequest{RegistryType: types.RegistryModel})
				return err
			},
			path:       endpointRegistryPage,
			wantKeys:   map[string]string{"registry_type": "model"},
			absentKeys: []string{"sort_by", "space", "search_term", "page"},
		},
		{
			// page 0 is a real page, not "absent"
			name: "page zero is sent",
			call: func(c *RegistryClient) error {
				_, err := c.GetRegistryPage(context.Background(), PageRequest{
					RegistryType: types.RegistryModel,
					SortBy:       "name",
					Page:         intPtr(0),
				})
				return err
			},
			path:     endpointRegistryPage,
			wantKeys: map[string]string{"registry_type": "model", "sort_by": "name", "page": "0"},
		},
		{
			name: "version page composes like registry page",
			call: func(c *RegistryClient) error {
				_, err := c.GetVersionPage(context.Background(), VersionPageRequest{
					RegistryType: types.RegistryModel,
					Name:         "churn-model",
					Page:         intPtr(2),
				})
				return err
			},
			path:       endpointVersionPage,
			wantKeys:   map[string]string{"registry_type": "model", "name": "churn-model", "page": "2"},
			absentKeys: []string{"space"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := newStubServer(t)
			stub.respond(endpointRegistryStats, `{"stats":{}}`)
			stub.respond(endpointRegistryPage, `{"page":[]}`)
			stub.respond(endpointVersionPage, `{"page":[]}`)

			if err := tt.call(stub.client(t)); err != nil {
				t.Fatalf("call failed: %v", err)
			}

			q := stub.lastQuery(t, tt.path)
			for key, want := range tt.wantKeys {
				if got := q.Get(key); got != want {
					t.Errorf("query[%s] = %q, want %q", key, got, want)
				}
			}
			for _, key := range tt.absentKeys {
				if _, ok := q[key]; ok {
					t.Errorf("query key %s should be absent, got %q", key, q.Get(key))
				}
			}
		})
	}
}

func TestGetCardUID(t *testing.T) {
	t.Run("first match wins", func(t *testing.T) {
		stub := newStubServer(t)
		stub.respond(endpointCardList, `[{"registry_type":"model","data":{"uid":"abc-123"}},{"registry_type":"model","data":{"uid":"ignored"}}]`)

		uid, err := stub.client(t).GetCardUID(context.Background(), CardUIDRequest{
			RegistryType: types.RegistryModel,
			Name:         "churn-model",
		})
		if err != nil {
			t.Fatalf("GetCardUID failed: %v", err)
		}
		if uid != "abc-123" {
			t.Errorf("uid = %q, want abc-123", uid)
		}

		q := stub.lastQuery(t, endpointCardList)
		if got := q.Get("limit"); got != "1" {
			t.Errorf("limit = %q, want 1", got)
		}
	})

	t.Run("empty list is not found", func(t *testing.T) {
		stub := newStubServer(t)
		stub.respond(endpointCardList, `[]`)

		_, err := stub.client(t).GetCardUID(context.Background(), CardUIDRequest{
			RegistryType: types.RegistryModel,
			Name:         "ghost",
		})
		if err == nil {
			t.Fatal("expected error for empty card list")
		}
		if !domain.IsNotFound(err) {
			t.Errorf("error = %v, want not-found", err)
		}
	})
}

func TestResolveUID(t *testing.T) {
	t.Run("uid short-circuits without network calls", func(t *testing.T) {
		stub := newStubServer(t)

		params := url.Values{}
		params.Set("uid", "direct-uid")
		params.Set("name", "churn-model")

		uid, err := stub.client(t).ResolveUID(context.Background(), params, types.RegistryModel)
		if err != nil {
			t.Fatalf("ResolveUID failed: %v", err)
		}
		if uid != "direct-uid" {
			t.Errorf("uid = %q, want direct-uid", uid)
		}
		if n := stub.requestCount(); n != 0 {
			t.Errorf("request count = %d, want 0", n)
		}
	})

	t.Run("missing uid delegates to card list", func(t *testing.T) {
		stub := newStubServer(t)
		stub.respond(endpointCardList, `[{"data":{"uid":"resolved-uid"}}]`)

		params := url.Values{}
		params.Set("name", "churn-model")
		params.Set("space", "ops")
		params.Set("version", "1.4.0")

		uid, err := stub.client(t).ResolveUID(context.Background(), params, types.RegistryModel)
		if err != nil {
			t.Fatalf("ResolveUID failed: %v", err)
		}
		if uid != "resolved-uid" {
			t.Errorf("uid = %q, want resolved-uid", uid)
		}

		q := stub.lastQuery(t, endpointCardList)
		for key, want := range map[string]string{"name": "churn-model", "space": "ops", "version": "1.4.0"} {
			if got := q.Get(key); got != want {
				t.Errorf("query[%s] = %q, want %q", key, got, want)
			}
		}
	})
}

func TestGetCardMetadata(t *testing.T) {
	t.Run("decodes typed metadata", func(t *testing.T) {
		stub := newStubServer(t)
		created := time.Date(2024, time.February, 28, 10, 45, 0, 0, time.UTC)
		body, _ := json.Marshal(types.CardMetadata{
			UID:          "abc-123",
			Name:         "churn-model",
			Space:        "ops",
			Version:      "1.4.0",
			RegistryType: types.RegistryModel,
			CreatedAt:    created,
		})
		stub.respond(endpointCardMetadata, string(body))

		card, err := stub.client(t).GetCardMetadata(context.Background(), "abc-123", types.RegistryModel)
		if err != nil {
			t.Fatalf("GetCardMetadata failed: %v", err)
		}
		if card.Name != "churn-model" || card.Space != "ops" || !card.CreatedAt.Equal(created) {
			t.Errorf("unexpected metadata: %+v", card)
		}
	})

	t.Run("non-object body fails decoding", func(t *testing.T) {
		stub := newStubServer(t)
		stub.respond(endpointCardMetadata, `["not","an","object"]`)

		_, err := stub.client(t).GetCardMetadata(context.Background(), "abc-123", types.RegistryModel)
		if err == nil {
			t.Fatal("expected decode error")
		}
		if !domain.IsDecode(err) {
			t.Errorf("error = %v, want decode error", err)
		}
	})
}

func TestSetupRegistryPage(t *testing.T) {
	spacesBody := `{"spaces":["ops","vision"]}`
	statsBody := `{"stats":{"nbr_names":3,"nbr_spaces":2,"nbr_versions":7}}`
	pageBody := `{"page":[{"space":"ops","name":"churn-model","version":"1.4.0","nbr_versions":3,"created_at":"2024-01-10T09:00:00Z","updated_at":"2024-02-28T10:45:00Z"}]}`

	t.Run("composes all three payloads", func(t *testing.T) {
		stub := newStubServer(t)
		stub.respond(endpointSpaces, spacesBody)
		stub.respond(endpointRegistryStats, statsBody)
		stub.respond(endpointRegistryPage, pageBody)

		got, err := stub.client(t).SetupRegistryPage(context.Background(), SetupRequest{
			RegistryType: types.RegistryModel,
			Space:        "ops",
		})
		if err != nil {
			t.Fatalf("SetupRegistryPage failed: %v", err)
		}

		if !reflect.DeepEqual(got.Spaces, []string{"ops", "vision"}) {
			t.Errorf("spaces = %v", got.Spaces)
		}
		if got.Stats.NbrVersions != 7 || got.Stats.NbrNames != 3 {
			t.Errorf("stats = %+v", got.Stats)
		}
		if len(got.Page) != 1 || got.Page[0].Name != "churn-model" {
			t.Errorf("page = %+v", got.Page)
		}
		if got.RegistryType != types.RegistryModel {
			t.Errorf("registry type = %s", got.RegistryType)
		}
	})

	t.Run("any failure rejects the whole bootstrap", func(t *testing.T) {
		stub := newStubServer(t)
		stub.respond(endpointSpaces, spacesBody)
		stub.fail(endpointRegistryStats, http.StatusInternalServerError)
		stub.respond(endpointRegistryPage, pageBody)

		got, err := stub.client(t).SetupRegistryPage(context.Background(), SetupRequest{
			RegistryType: types.RegistryModel,
		})
		if err == nil {
			t.Fatal("expected error when one fetch fails")
		}
		if got != nil {
			t.Errorf("expected nil result on failure, got %+v", got)
		}
	})
}

func TestGetJSONStatusHandling(t *testing.T) {
	stub := newStubServer(t)
	// no route registered: the stub answers 404

	_, err := stub.client(t).GetSpaces(context.Background(), types.RegistryModel)
	if err == nil {
		t.Fatal("expected error for 404")
	}
	if !domain.IsNotFound(err) {
		t.Errorf("error = %v, want not-found", err)
	}
}

func TestNormalizeServerURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "adds scheme", in: "localhost:8888", want: "http://localhost:8888"},
		{name: "strips trailing slash", in: "http://example.com/", want: "http://example.com"},
		{name: "keeps https", in: "https://example.com", want: "https://example.com"},
		{name: "rejects empty host", in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeServerURL(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("normalizeServerURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
