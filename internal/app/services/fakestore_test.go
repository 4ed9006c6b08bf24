package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	gosync "sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tmercan/fightnight/internal/app/models"
	"github.com/tmercan/fightnight/internal/app/repositories"
	"github.com/tmercan/fightnight/internal/config"
	"github.com/tmercan/fightnight/internal/session"
	"github.com/tmercan/fightnight/internal/store"
	"github.com/tmercan/fightnight/internal/sync"
)

// fakeStore is an in-memory stand-in for the hosted entity store. It honors
// the same query surface the client uses: exact-match predicates in `q` and a
// single sort field with a leading '-' for descending.
type fakeStore struct {
	mu      gosync.Mutex
	records map[string][]map[string]interface{}
	creates map[string]int
	nextID  int
	server  *httptest.Server
}

func newFakeStore(t *testing.T) *fakeStore {
	t.Helper()
	fs := &fakeStore{
		records: make(map[string][]map[string]interface{}),
		creates: make(map[string]int),
	}
	fs.server = httptest.NewServer(http.HandlerFunc(fs.handle))
	t.Cleanup(fs.server.Close)
	return fs
}

func (fs *fakeStore) handle(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	// api/apps/{appID}/entities/{Kind}
	if len(parts) != 5 || parts[3] != "entities" {
		http.NotFound(w, r)
		return
	}
	kind := parts[4]

	fs.mu.Lock()
	defer fs.mu.Unlock()

	switch r.Method {
	case http.MethodGet:
		matched := fs.filter(kind, r.URL.Query().Get("q"))
		sortRecords(matched, r.URL.Query().Get("sort"))
		json.NewEncoder(w).Encode(matched)
	case http.MethodPost:
		var record map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		fs.nextID++
		record["id"] = fmt.Sprintf("%s-%d", strings.ToLower(kind), fs.nextID)
		if _, ok := record["created_date"]; !ok {
			record["created_date"] = time.Now().UTC().Format(time.RFC3339)
		}
		fs.records[kind] = append(fs.records[kind], record)
		fs.creates[kind]++
		json.NewEncoder(w).Encode(record)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (fs *fakeStore) filter(kind, q string) []map[string]interface{} {
	var predicate map[string]interface{}
	if q != "" {
		_ = json.Unmarshal([]byte(q), &predicate)
	}

	matched := make([]map[string]interface{}, 0)
	for _, record := range fs.records[kind] {
		ok := true
		for field, want := range predicate {
			if fmt.Sprint(record[field]) != fmt.Sprint(want) {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, record)
		}
	}
	return matched
}

func sortRecords(records []map[string]interface{}, order string) {
	if order == "" {
		return
	}
	desc := strings.HasPrefix(order, "-")
	field := strings.TrimPrefix(order, "-")

	sort.SliceStable(records, func(i, j int) bool {
		if desc {
			return lessValues(records[j][field], records[i][field])
		}
		return lessValues(records[i][field], records[j][field])
	})
}

func lessValues(a, b interface{}) bool {
	fa, aok := toFloat(a)
	fb, bok := toFloat(b)
	if aok && bok {
		return fa < fb
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// seed inserts a record directly, bypassing the create counters.
func (fs *fakeStore) seed(kind string, record map[string]interface{}) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if _, ok := record["created_date"]; !ok {
		record["created_date"] = time.Now().UTC().Format(time.RFC3339)
	}
	fs.records[kind] = append(fs.records[kind], record)
}

func (fs *fakeStore) createCount(kind string) int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.creates[kind]
}

func newTestServices(t *testing.T) (*Services, *fakeStore) {
	t.Helper()
	fs := newFakeStore(t)

	cfg := &config.Config{}
	cfg.Backend.BaseURL = fs.server.URL
	cfg.Backend.AppID = "test-app"
	cfg.Backend.Timeout = "5s"
	cfg.Sync.ChatPollInterval = "3s"
	cfg.Sync.PagePollInterval = "15s"
	cfg.Sync.BindingIdleTTL = "10m"

	client := store.NewClient(cfg, zerolog.Nop())
	repos := repositories.NewRepositories(client)
	syncer := sync.NewSyncer(time.Hour, zerolog.Nop())
	return NewServices(repos, syncer, cfg, zerolog.Nop()), fs
}

func fighterSession(userID string) session.Session {
	return session.Session{
		State: session.StateAuthenticated,
		User:  &models.User{ID: userID, Email: userID + "@example.com", FullName: "User " + userID, RoleType: models.RoleFighter},
	}
}

func organizerSession(userID string) session.Session {
	return session.Session{
		State: session.StateAuthenticated,
		User:  &models.User{ID: userID, Email: userID + "@example.com", FullName: "Org " + userID, RoleType: models.RoleOrganizer},
	}
}

func anonymousSession() session.Session {
	return session.Session{State: session.StateAnonymous}
}
