package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf-backend/internal/domains/author"
	"bookshelf-backend/internal/domains/author/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeRepo is the in-memory stand-in for the relational store.
type fakeRepo struct {
	records map[string]author.Author
	order   []string
}

func (r *fakeRepo) List(ctx context.Context) ([]author.Author, error) {
	out := []author.Author{}
	for _, id := range r.order {
		out = append(out, r.records[id])
	}
	return out, nil
}

func (r *fakeRepo) Insert(ctx context.Context, a *author.Author) (*author.Author, error) {
	stored := *a
	stored.CreatedOn = time.Now()
	stored.LastUpdatedOn = stored.CreatedOn
	r.records[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	return &stored, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*author.Author, error) {
	a, ok := r.records[id]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	return &a, nil
}

func (r *fakeRepo) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	existing, ok := r.records[a.ID]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	existing.Name = a.Name
	existing.Bio = a.Bio
	existing.BirthDate = a.BirthDate
	existing.LastUpdatedOn = time.Now()
	r.records[a.ID] = existing
	return &existing, nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	delete(r.records, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func newTestRouter() *gin.Engine {
	repo := &fakeRepo{records: map[string]author.Author{}}
	h := NewAuthorHandler(service.NewAuthorService(repo))

	router := gin.New()
	router.GET("/authors", h.List)
	router.POST("/authors", h.Create)
	router.GET("/authors/:id", h.GetByID)
	router.PUT("/authors/:id", h.Update)
	router.DELETE("/authors/:id", h.Delete)
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateThenGetRoundTrips(t *testing.T) {
	router := newTestRouter()

	w := doJSON(router, http.MethodPost, "/authors",
		`{"name":"A","bio":"B","birth_date":"1990-01-01"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "A", created["name"])
	assert.Equal(t, "B", created["bio"])
	assert.Equal(t, "1990-01-01", created["birth_date"])
	assert.Contains(t, created, "created_on")
	assert.Contains(t, created, "last_updated_on")

	w = doJSON(router, http.MethodGet, "/authors/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "A", got["name"])
	assert.Equal(t, "B", got["bio"])
	assert.Equal(t, "1990-01-01", got["birth_date"])
}

func TestCreateInvalidPayloadsFail(t *testing.T) {
	invalid := []struct {
		name string
		body string
	}{
		{"truncated date", `{"name":"asas","bio":"Hello","birth_date":"1991-01"}`},
		{"empty name", `{"name":"","bio":"Hello","birth_date":"1990-01-01"}`},
		{"wrong type for bio", `{"name":"ds","bio":1,"birth_date":"1990-01-01"}`},
		{"missing fields", `{"name":"ds"}`},
		{"not json", `not json at all`},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter()
			w := doJSON(router, http.MethodPost, "/authors", tt.body)
			assert.Equal(t, http.StatusInternalServerError, w.Code)

			var envelope map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
			assert.Contains(t, envelope, "message")
		})
	}
}

func TestListReturnsAllCreated(t *testing.T) {
	router := newTestRouter()

	const n = 4
	for i := 0; i < n; i++ {
		w := doJSON(router, http.MethodPost, "/authors",
			fmt.Sprintf(`{"name":"author-%d","bio":"bio","birth_date":"1990-01-01"}`, i))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(router, http.MethodGet, "/authors", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, n)
}

func TestGetAbsentReturnsEmptyResult(t *testing.T) {
	router := newTestRouter()

	w := doJSON(router, http.MethodGet, "/authors/does-not-exist", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())
}

func TestUpdateReplacesFields(t *testing.T) {
	router := newTestRouter()

	w := doJSON(router, http.MethodPost, "/authors",
		`{"name":"asdas","bio":"hello","birth_date":"1990-01-01"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created["id"].(string)

	w = doJSON(router, http.MethodPut, "/authors/"+id,
		`{"name":"asdas","bio":"bye","birth_date":"1990-01-01"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/authors/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "bye", got["bio"])
	assert.Equal(t, "asdas", got["name"])
}

func TestUpdateAbsentFails(t *testing.T) {
	router := newTestRouter()

	w := doJSON(router, http.MethodPut, "/authors/missing",
		`{"name":"A","bio":"B","birth_date":"1990-01-01"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDeleteIsIdempotentAndAcknowledged(t *testing.T) {
	router := newTestRouter()

	w := doJSON(router, http.MethodPost, "/authors",
		`{"name":"A","bio":"B","birth_date":"1990-01-01"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created["id"].(string)

	w = doJSON(router, http.MethodDelete, "/authors/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)

	var ack map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ack))
	assert.Contains(t, ack["message"], id)

	// Deleting again still succeeds.
	w = doJSON(router, http.MethodDelete, "/authors/"+id, "")
	assert.Equal(t, http.StatusOK, w.Code)

	// And the record is gone: empty result, success status.
	w = doJSON(router, http.MethodGet, "/authors/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())
}
