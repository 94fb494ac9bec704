package posttests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// mockPostService is an in-process stand-in for the service under test,
// implementing the documented contract of the /posts resource: ETag-based
// conditional reads, default substitution on create, replace-on-PUT, 404 after
// delete, and 400 for malformed creation bodies. The failure-injection fields
// let tests verify that the suite actually flags contract violations.
type mockPostService struct {
	mu       sync.Mutex
	docs     map[int]map[string]interface{}
	versions map[int]int
	nextID   int

	omitCacheValidator bool
	deleteBody         string
}

func newMockPostService() *mockPostService {
	s := &mockPostService{
		docs:     make(map[int]map[string]interface{}),
		versions: make(map[int]int),
		nextID:   101,
	}
	for id := 1; id <= 10; id++ {
		s.docs[id] = map[string]interface{}{
			"id":     id,
			"title":  fmt.Sprintf("Seed title %d", id),
			"body":   fmt.Sprintf("Seed body for post %d.", id),
			"userId": (id-1)/5 + 1,
		}
		s.versions[id] = 1
	}
	return s
}

func (s *mockPostService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case r.URL.Path == "/posts":
		s.serveCollection(w, r)
	case strings.HasPrefix(r.URL.Path, "/posts/"):
		s.serveItem(w, r, strings.TrimPrefix(r.URL.Path, "/posts/"))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (s *mockPostService) serveCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		ids := make([]int, 0, len(s.docs))
		for id := range s.docs {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		list := make([]map[string]interface{}, 0, len(ids))
		for _, id := range ids {
			list = append(list, s.docs[id])
		}
		writeJSON(w, http.StatusOK, list)
	case http.MethodPost:
		doc, ok := decodeBody(r)
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		substituteDefault(doc, "title", "")
		substituteDefault(doc, "body", "")
		substituteDefault(doc, "userId", 1)
		id := s.nextID
		s.nextID++
		doc["id"] = id
		s.docs[id] = doc
		s.versions[id] = 1
		writeJSON(w, http.StatusCreated, doc)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *mockPostService) serveItem(w http.ResponseWriter, r *http.Request, raw string) {
	id, err := strconv.Atoi(raw)
	doc := s.docs[id]
	if err != nil || doc == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		etag := fmt.Sprintf(`"%d-%d"`, id, s.versions[id])
		if !s.omitCacheValidator {
			w.Header().Set("ETag", etag)
		}
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		if r.Method == http.MethodHead {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			return
		}
		writeJSON(w, http.StatusOK, doc)
	case http.MethodPut:
		newDoc, ok := decodeBody(r)
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		newDoc["id"] = id
		s.docs[id] = newDoc
		s.versions[id]++
		writeJSON(w, http.StatusOK, newDoc)
	case http.MethodDelete:
		delete(s.docs, id)
		if s.deleteBody != "" {
			writeRaw(w, http.StatusOK, []byte(s.deleteBody))
			return
		}
		writeRaw(w, http.StatusOK, []byte("{}"))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func decodeBody(r *http.Request) (map[string]interface{}, bool) {
	var doc map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil || doc == nil {
		return nil, false
	}
	return doc, true
}

func substituteDefault(doc map[string]interface{}, field string, value interface{}) {
	if v, present := doc[field]; !present || v == nil {
		doc[field] = value
	}
}

func writeJSON(w http.ResponseWriter, status int, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeRaw(w, status, data)
}

func writeRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
