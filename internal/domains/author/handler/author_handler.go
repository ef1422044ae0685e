package handler

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookshelf-backend/internal/domains/author"
	"bookshelf-backend/internal/shared/response"
	"bookshelf-backend/internal/shared/validate"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// fail logs the error and writes the uniform envelope. Every failure on this
// surface collapses to a 500 with a descriptive message.
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

// List - GET /authors
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		fail(c, err, "There was a problem getting all the author objects")
		return
	}

	response.OK(c, authors)
}

// Create - POST /authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var payload author.AuthorPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		fail(c, err, "There was a problem creating the author object")
		return
	}

	if err := payload.Validate(); err != nil {
		fail(c, err, "There was a problem creating the author object")
		return
	}

	created, err := h.service.Create(c.Request.Context(), payload)
	if err != nil {
		fail(c, err, "There was a problem creating the author object")
		return
	}

	response.OK(c, created)
}

// GetByID - GET /authors/:id
// An absent record is an empty result, not an error.
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	if err := validate.ID(id); err != nil {
		fail(c, err, "There was a problem getting the author object with id=%s", id)
		return
	}

	a, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			response.Empty(c)
			return
		}
		fail(c, err, "There was a problem getting the author object with id=%s", id)
		return
	}

	response.OK(c, a)
}

// Update - PUT /authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	id := c.Param("id")

	if err := validate.ID(id); err != nil {
		fail(c, err, "There was a problem updating the author object with id=%s", id)
		return
	}

	var payload author.AuthorPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		fail(c, err, "There was a problem updating the author object with id=%s", id)
		return
	}

	if err := payload.Validate(); err != nil {
		fail(c, err, "There was a problem updating the author object with id=%s", id)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, payload)
	if err != nil {
		fail(c, err, "There was a problem updating the author object with id=%s", id)
		return
	}

	response.OK(c, updated)
}

// Delete - DELETE /authors/:id
// Succeeds whether or not the record existed; the cascade removes the
// author's books.
func (h *AuthorHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := validate.ID(id); err != nil {
		fail(c, err, "There was a problem deleting the author object with id=%s", id)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		fail(c, err, "There was a problem deleting the author object with id=%s", id)
		return
	}

	response.Ack(c, fmt.Sprintf("Successfully deleted Author with id: %s", id))
}
