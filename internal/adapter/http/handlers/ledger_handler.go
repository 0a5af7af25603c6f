package handlers

import (
	"errors"
	"net/http"

	"maintup/internal/domain/entities"
	"maintup/internal/usecase"
	"maintup/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid JSON payload", http.StatusBadRequest)

// LedgerHandler serves the uniform CRUD routes applied to every collection.
// The bound collection name comes from the route registration, not from a
// path parameter, so only the four known collections are ever reachable.

type LedgerHandler struct {
	usecase usecase.ILedgerUseCase
}

func NewLedgerHandler(uc usecase.ILedgerUseCase) *LedgerHandler {
	return &LedgerHandler{usecase: uc}
}

// List answers GET /<collection> with the full array. No filtering, paging or
// sorting; consumers do all of that themselves.
func (h *LedgerHandler) List(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := h.usecase.List(c.Request.Context(), collection)
		if err != nil {
			appErr := mapLedgerError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func (h *LedgerHandler) Create(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var attrs map[string]any
		if err := c.ShouldBindJSON(&attrs); err != nil {
			c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
			return
		}
		item, err := h.usecase.Create(c.Request.Context(), collection, attrs)
		if err != nil {
			appErr := mapLedgerError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

func (h *LedgerHandler) Update(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var attrs map[string]any
		if err := c.ShouldBindJSON(&attrs); err != nil {
			c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
			return
		}
		item, err := h.usecase.Update(c.Request.Context(), collection, c.Param("id"), attrs)
		if err != nil {
			appErr := mapLedgerError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// Delete always answers 204, whether or not the id existed.
func (h *LedgerHandler) Delete(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.usecase.Delete(c.Request.Context(), collection, c.Param("id")); err != nil {
			appErr := mapLedgerError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// Sync answers POST /sync: the request body replaces the whole document
// verbatim, collections defaulting to empty arrays when absent. Records bind
// as raw objects so a sync-then-GET round trip returns identical data.
func (h *LedgerHandler) Sync(c *gin.Context) {
	var doc entities.RawDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	if err := h.usecase.ReplaceAll(c.Request.Context(), doc); err != nil {
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapLedgerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnknownCollection):
		return pkg.NewDomainErrorSimple("COLLECTION_NOT_FOUND", "Collection not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidItemID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
