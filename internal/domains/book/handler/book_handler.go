package handler

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookshelf-backend/internal/domains/book"
	"bookshelf-backend/internal/shared/response"
	"bookshelf-backend/internal/shared/validate"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{service: svc}
}

func fail(c *gin.Context, err error, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)

	log.Error().
		Err(err).
		Str("request_id", c.GetString("request_id")).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg(msg)

	response.Error(c, fmt.Sprintf("%s: %v", msg, err))
}

// List - GET /books
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.service.List(c.Request.Context())
	if err != nil {
		fail(c, err, "There was a problem getting all the book objects")
		return
	}

	response.OK(c, books)
}

// ListByAuthor - GET /authors/:id/books
func (h *BookHandler) ListByAuthor(c *gin.Context) {
	authorID := c.Param("id")

	if err := validate.ID(authorID); err != nil {
		fail(c, err, "There was a problem getting the book objects of the author with id=%s", authorID)
		return
	}

	books, err := h.service.ListByAuthor(c.Request.Context(), authorID)
	if err != nil {
		fail(c, err, "There was a problem getting the book objects of the author with id=%s", authorID)
		return
	}

	response.OK(c, books)
}

// Create - POST /books
// An unknown author_id fails here through the store's foreign key.
func (h *BookHandler) Create(c *gin.Context) {
	var payload book.BookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		fail(c, err, "There was a problem creating the book object")
		return
	}

	if err := payload.Validate(); err != nil {
		fail(c, err, "There was a problem creating the book object")
		return
	}

	created, err := h.service.Create(c.Request.Context(), payload)
	if err != nil {
		fail(c, err, "There was a problem creating the book object")
		return
	}

	response.OK(c, created)
}

// GetByID - GET /books/:id
// An absent record is an empty result, not an error.
func (h *BookHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	if err := validate.ID(id); err != nil {
		fail(c, err, "There was a problem getting the book object with id=%s", id)
		return
	}

	b, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			response.Empty(c)
			return
		}
		fail(c, err, "There was a problem getting the book object with id=%s", id)
		return
	}

	response.OK(c, b)
}

// Update - PUT /books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id := c.Param("id")

	if err := validate.ID(id); err != nil {
		fail(c, err, "There was a problem updating the book object with id=%s", id)
		return
	}

	var payload book.BookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		fail(c, err, "There was a problem updating the book object with id=%s", id)
		return
	}

	if err := payload.Validate(); err != nil {
		fail(c, err, "There was a problem updating the book object with id=%s", id)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, payload)
	if err != nil {
		fail(c, err, "There was a problem updating the book object with id=%s", id)
		return
	}

	response.OK(c, updated)
}

// Delete - DELETE /books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := validate.ID(id); err != nil {
		fail(c, err, "There was a problem deleting the book object with id=%s", id)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		fail(c, err, "There was a problem deleting the book object with id=%s", id)
		return
	}

	response.Ack(c, fmt.Sprintf("Successfully deleted Book with id: %s", id))
}
