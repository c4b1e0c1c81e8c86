package authors_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/5w1tchy/catalog-api/internal/api/handlers/authors"
	storeauthors "github.com/5w1tchy/catalog-api/internal/store/authors"
	"github.com/5w1tchy/catalog-api/internal/store/dbx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore keeps authors in memory and counts calls so tests can assert that
// invalid requests never reach persistence.
type fakeStore struct {
	rows      map[int64]storeauthors.Author
	withBooks map[int64]bool
	nextID    int64
	calls     int
	fail      error
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: map[int64]storeauthors.Author{}, withBooks: map[int64]bool{}, nextID: 1}
}

func (f *fakeStore) List(ctx context.Context) ([]storeauthors.Author, error) {
	f.calls++
	if f.fail != nil {
		return nil, f.fail
	}
	out := make([]storeauthors.Author, 0, len(f.rows))
	for _, a := range f.rows {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeStore) Get(ctx context.Context, id int64) (storeauthors.Author, error) {
	f.calls++
	a, ok := f.rows[id]
	if !ok {
		return storeauthors.Author{}, dbx.ErrNotFound
	}
	return a, nil
}

func (f *fakeStore) Create(ctx context.Context, in storeauthors.AuthorInput) (int64, error) {
	f.calls++
	if f.fail != nil {
		return 0, f.fail
	}
	id := f.nextID
	f.nextID++
	now := time.Now().UTC()
	f.rows[id] = storeauthors.Author{ID: id, Name: in.Name, Nationality: in.Nationality, CreatedAt: now, UpdatedAt: now}
	return id, nil
}

func (f *fakeStore) Update(ctx context.Context, id int64, in storeauthors.AuthorInput) error {
	f.calls++
	a, ok := f.rows[id]
	if !ok {
		return dbx.ErrNotFound
	}
	a.Name, a.Nationality = in.Name, in.Nationality
	f.rows[id] = a
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, id int64) error {
	f.calls++
	if _, ok := f.rows[id]; !ok {
		return dbx.ErrNotFound
	}
	if f.withBooks[id] {
		return fmt.Errorf("%w: fk", dbx.ErrReferenced)
	}
	delete(f.rows, id)
	return nil
}

func do(h http.HandlerFunc, method, target, id, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if id != "" {
		req.SetPathValue("id", id)
	}
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func TestCreateThenGet(t *testing.T) {
	s := newFakeStore()

	rec := do(authors.Create(s), http.MethodPost, "/authors", "", `{"name":"  Graciliano Ramos ","nationality":"Brazilian"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID      int64  `json:"id"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)
	assert.NotEmpty(t, created.Message)

	rec = do(authors.Get(s), http.MethodGet, "/authors/1", "1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got storeauthors.Author
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Graciliano Ramos", got.Name)
	require.NotNil(t, got.Nationality)
	assert.Equal(t, "Brazilian", *got.Nationality)
}

func TestCreate_MissingNameNeverReachesStore(t *testing.T) {
	for _, body := range []string{`{}`, `{"name":""}`, `{"name":"   ","nationality":"Chilean"}`} {
		s := newFakeStore()
		rec := do(authors.Create(s), http.MethodPost, "/authors", "", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "name is required", message(t, rec))
		assert.Zero(t, s.calls, "store must not be called for %s", body)
	}
}

func TestCreate_MalformedJSON(t *testing.T) {
	s := newFakeStore()
	rec := do(authors.Create(s), http.MethodPost, "/authors", "", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, s.calls)
}

func TestCreate_StoreFailureIsGeneric500(t *testing.T) {
	s := newFakeStore()
	s.fail = errors.New("pq: connection refused to 10.0.0.3")

	rec := do(authors.Create(s), http.MethodPost, "/authors", "", `{"name":"Érico Veríssimo"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.3")
}

func TestList(t *testing.T) {
	s := newFakeStore()
	rec := do(authors.List(s), http.MethodGet, "/authors", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	s.fail = errors.New("timeout")
	rec = do(authors.List(s), http.MethodGet, "/authors", "", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGet_NotFoundAndBadID(t *testing.T) {
	s := newFakeStore()

	rec := do(authors.Get(s), http.MethodGet, "/authors/5", "5", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(authors.Get(s), http.MethodGet, "/authors/abc", "abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 1, s.calls)
}

func TestUpdate(t *testing.T) {
	s := newFakeStore()
	s.rows[1] = storeauthors.Author{ID: 1, Name: "Old"}

	rec := do(authors.Update(s), http.MethodPut, "/authors/1", "1", `{"name":"New"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "New", s.rows[1].Name)

	rec = do(authors.Update(s), http.MethodPut, "/authors/2", "2", `{"name":"Ghost"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	_, exists := s.rows[2]
	assert.False(t, exists)

	calls := s.calls
	rec = do(authors.Update(s), http.MethodPut, "/authors/1", "1", `{"nationality":"Portuguese"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, calls, s.calls)
	assert.Equal(t, "New", s.rows[1].Name)
}

func TestDelete(t *testing.T) {
	s := newFakeStore()
	s.rows[1] = storeauthors.Author{ID: 1, Name: "Free"}
	s.rows[2] = storeauthors.Author{ID: 2, Name: "Busy"}
	s.withBooks[2] = true

	rec := do(authors.Delete(s), http.MethodDelete, "/authors/1", "1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(authors.Delete(s), http.MethodDelete, "/authors/2", "2", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	_, stillThere := s.rows[2]
	assert.True(t, stillThere)

	rec = do(authors.Delete(s), http.MethodDelete, "/authors/1", "1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(authors.Delete(s), http.MethodDelete, "/authors/0", "0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
