package mock

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const restPrefix = "/rest/v1/"

// Server is an in-memory stand-in for the hosted data store's REST interface.
// It understands eq./is.null filters, order=<field>.<asc|desc> and limit.
type Server struct {
	*httptest.Server
	mu       sync.Mutex
	tables   map[string][]map[string]interface{}
	failures map[string]failure
	requests []string
	nextID   int
}

type failure struct {
	status int
	code   string
}

// NewServer starts a mock store that is closed with the test
func NewServer(tb testing.TB) *Server {
	tb.Helper()
	s := &Server{
		tables:   map[string][]map[string]interface{}{},
		failures: map[string]failure{},
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	tb.Cleanup(s.Close)
	return s
}

// SetRows replaces the rows of collection, keeping the given order as insertion order
func (s *Server) SetRows(collection string, rows ...map[string]interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[collection] = rows
}

// Rows returns the current rows of collection
func (s *Server) Rows(collection string) []map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]map[string]interface{}(nil), s.tables[collection]...)
}

// Fail makes every request to collection answer with status
func (s *Server) Fail(collection string, status int) {
	s.FailWithCode(collection, status, "PGRST000")
}

// FailWithCode makes every request to collection answer with status and the
// given postgres or PostgREST error code, e.g. 22P02 for a malformed uuid
func (s *Server) FailWithCode(collection string, status int, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[collection] = failure{status: status, code: code}
}

// Requests returns the request URIs received so far
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, r.URL.RequestURI())

	if !strings.HasPrefix(r.URL.Path, restPrefix) {
		http.NotFound(w, r)
		return
	}
	collection := strings.TrimPrefix(r.URL.Path, restPrefix)
	if collection == "" {
		_, _ = w.Write([]byte(`{}`))
		return
	}
	if f, ok := s.failures[collection]; ok {
		writeJSON(w, f.status, map[string]string{"code": f.code, "message": "mock failure"})
		return
	}

	params := r.URL.Query()
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.query(collection, params))
	case http.MethodPost:
		var rows []map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
			return
		}
		for _, row := range rows {
			if _, ok := row["id"]; !ok {
				s.nextID++
				row["id"] = fmt.Sprintf("mock-%d", s.nextID)
			}
			s.tables[collection] = append(s.tables[collection], row)
		}
		writeJSON(w, http.StatusCreated, rows)
	case http.MethodPatch:
		var patch map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
			return
		}
		updated := []map[string]interface{}{}
		for _, row := range s.tables[collection] {
			if matches(row, params) {
				for k, v := range patch {
					row[k] = v
				}
				updated = append(updated, row)
			}
		}
		writeJSON(w, http.StatusOK, updated)
	case http.MethodDelete:
		var kept, removed []map[string]interface{}
		for _, row := range s.tables[collection] {
			if matches(row, params) {
				removed = append(removed, row)
			} else {
				kept = append(kept, row)
			}
		}
		s.tables[collection] = kept
		if removed == nil {
			removed = []map[string]interface{}{}
		}
		writeJSON(w, http.StatusOK, removed)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) query(collection string, params map[string][]string) []map[string]interface{} {
	result := []map[string]interface{}{}
	for _, row := range s.tables[collection] {
		if matches(row, params) {
			result = append(result, row)
		}
	}
	if order := first(params, "order"); order != "" {
		field, dir, _ := strings.Cut(order, ".")
		sort.SliceStable(result, func(i, j int) bool {
			a, b := format(result[i][field]), format(result[j][field])
			fa, errA := strconv.ParseFloat(a, 64)
			fb, errB := strconv.ParseFloat(b, 64)
			less := a < b
			if errA == nil && errB == nil {
				less = fa < fb
			}
			if dir == "desc" {
				if errA == nil && errB == nil {
					return fa > fb
				}
				return a > b
			}
			return less
		})
	}
	if limit, err := strconv.Atoi(first(params, "limit")); err == nil && limit < len(result) {
		result = result[:limit]
	}
	return result
}

func matches(row map[string]interface{}, params map[string][]string) bool {
	for field, values := range params {
		if field == "select" || field == "order" || field == "limit" {
			continue
		}
		for _, v := range values {
			switch {
			case v == "is.null":
				if row[field] != nil {
					return false
				}
			case strings.HasPrefix(v, "eq."):
				if format(row[field]) != strings.TrimPrefix(v, "eq.") {
					return false
				}
			}
		}
	}
	return true
}

func format(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

func first(params map[string][]string, key string) string {
	if v := params[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
