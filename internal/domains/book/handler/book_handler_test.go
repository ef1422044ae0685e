package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf-backend/internal/domains/book"
	"bookshelf-backend/internal/domains/book/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeRepo simulates the relational store including foreign-key enforcement:
// inserts and updates referencing an unknown author fail the way the
// database would.
type fakeRepo struct {
	records map[string]book.Book
	order   []string
	authors map[string]bool
}

func newFakeRepo(authorIDs ...string) *fakeRepo {
	authors := map[string]bool{}
	for _, id := range authorIDs {
		authors[id] = true
	}
	return &fakeRepo{records: map[string]book.Book{}, authors: authors}
}

func (r *fakeRepo) List(ctx context.Context) ([]book.Book, error) {
	out := []book.Book{}
	for _, id := range r.order {
		out = append(out, r.records[id])
	}
	return out, nil
}

func (r *fakeRepo) ListByAuthor(ctx context.Context, authorID string) ([]book.Book, error) {
	out := []book.Book{}
	for _, id := range r.order {
		if r.records[id].AuthorID == authorID {
			out = append(out, r.records[id])
		}
	}
	return out, nil
}

func (r *fakeRepo) Insert(ctx context.Context, b *book.Book) (*book.Book, error) {
	if !r.authors[b.AuthorID] {
		return nil, book.ErrAuthorMissing
	}
	stored := *b
	stored.CreatedOn = time.Now()
	stored.LastUpdatedOn = stored.CreatedOn
	r.records[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	return &stored, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*book.Book, error) {
	b, ok := r.records[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return &b, nil
}

func (r *fakeRepo) Update(ctx context.Context, b *book.Book) (*book.Book, error) {
	existing, ok := r.records[b.ID]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	if !r.authors[b.AuthorID] {
		return nil, book.ErrAuthorMissing
	}
	existing.Title = b.Title
	existing.Description = b.Description
	existing.PublishDate = b.PublishDate
	existing.AuthorID = b.AuthorID
	existing.LastUpdatedOn = time.Now()
	r.records[b.ID] = existing
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

func newTestRouter(repo *fakeRepo) *gin.Engine {
	h := NewBookHandler(service.NewBookService(repo))

	router := gin.New()
	router.GET("/books", h.List)
	router.POST("/books", h.Create)
	router.GET("/books/:id", h.GetByID)
	router.PUT("/books/:id", h.Update)
	router.DELETE("/books/:id", h.Delete)
	router.GET("/authors/:id/books", h.ListByAuthor)
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

func createBook(t *testing.T, router *gin.Engine, title, authorID string) map[string]interface{} {
	t.Helper()

	w := doJSON(router, http.MethodPost, "/books",
		`{"title":"`+title+`","description":"D","publish_date":"2001-06-15","author_id":"`+authorID+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	return created
}

func TestCreateRoundTripsFields(t *testing.T) {
	router := newTestRouter(newFakeRepo("author-1"))

	created := createBook(t, router, "T", "author-1")
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "T", created["title"])
	assert.Equal(t, "author-1", created["author_id"])
	assert.Equal(t, "2001-06-15", created["publish_date"])

	w := doJSON(router, http.MethodGet, "/books/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "T", got["title"])
	assert.Equal(t, "author-1", got["author_id"])
}

func TestCreateWithUnknownAuthorFails(t *testing.T) {
	router := newTestRouter(newFakeRepo("author-1"))

	w := doJSON(router, http.MethodPost, "/books",
		`{"title":"T","description":"D","publish_date":"2001-06-15","author_id":"nope"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Contains(t, envelope, "message")
}

func TestCreateInvalidPayloadsFail(t *testing.T) {
	invalid := []struct {
		name string
		body string
	}{
		{"empty title", `{"title":"","description":"D","publish_date":"2001-06-15","author_id":"a"}`},
		{"malformed date", `{"title":"T","description":"D","publish_date":"2001-6","author_id":"a"}`},
		{"empty author id", `{"title":"T","description":"D","publish_date":"2001-06-15","author_id":""}`},
		{"wrong type for description", `{"title":"T","description":7,"publish_date":"2001-06-15","author_id":"a"}`},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(newFakeRepo("a"))
			w := doJSON(router, http.MethodPost, "/books", tt.body)
			assert.Equal(t, http.StatusInternalServerError, w.Code)
		})
	}
}

func TestListByAuthorFiltersExactly(t *testing.T) {
	router := newTestRouter(newFakeRepo("author-1", "author-2"))

	createBook(t, router, "one", "author-1")
	createBook(t, router, "two", "author-1")
	createBook(t, router, "other", "author-2")

	w := doJSON(router, http.MethodGet, "/authors/author-1/books", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	for _, b := range list {
		assert.Equal(t, "author-1", b["author_id"])
	}

	w = doJSON(router, http.MethodGet, "/authors/author-2/books", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestGetAbsentReturnsEmptyResult(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	w := doJSON(router, http.MethodGet, "/books/missing", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())
}

func TestUpdateReplacesFields(t *testing.T) {
	router := newTestRouter(newFakeRepo("author-1", "author-2"))

	created := createBook(t, router, "T", "author-1")
	id := created["id"].(string)

	w := doJSON(router, http.MethodPut, "/books/"+id,
		`{"title":"T2","description":"D2","publish_date":"2002-07-16","author_id":"author-2"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var updated map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "T2", updated["title"])
	assert.Equal(t, "author-2", updated["author_id"])
	assert.Equal(t, "2002-07-16", updated["publish_date"])
}

func TestDeleteAcknowledgesWithID(t *testing.T) {
	router := newTestRouter(newFakeRepo("author-1"))

	created := createBook(t, router, "T", "author-1")
	id := created["id"].(string)

	w := doJSON(router, http.MethodDelete, "/books/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)

	var ack map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ack))
	assert.Contains(t, ack["message"], id)
}
