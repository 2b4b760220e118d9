package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookleaf-royalty/internal/domains/author/model"
	"bookleaf-royalty/internal/domains/author/service"
	"bookleaf-royalty/internal/shared/response"
)

type AuthorHandler struct {
	service service.ServiceInterface
}

func NewAuthorHandler(svc service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// GetAll - GET /authors
// Every author with total_earnings and current_balance.
func (h *AuthorHandler) GetAll(c *gin.Context) {
	authors, err := h.service.ListAuthors(c.Request.Context())
	if err != nil {
		log.Error().
			Str("request_id", c.GetString("request_id")).
			Err(err).
			Msg("Unexpected error while fetching authors")
		response.InternalServerError(c)
		return
	}

	if len(authors) == 0 {
		response.List(c, http.StatusOK, "No author found", []model.AuthorBalance{})
		return
	}

	response.List(c, http.StatusOK, "Authors fetched successfully", authors)
}

// GetByID - GET /authors/:author_id
func (h *AuthorHandler) GetByID(c *gin.Context) {
	authorID, ok := parseAuthorID(c)
	if !ok {
		return
	}

	detail, err := h.service.GetAuthorDetail(c.Request.Context(), authorID)
	if err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			response.NotFound(c, model.ErrAuthorNotFound.Error())
			return
		}
		log.Error().
			Str("request_id", c.GetString("request_id")).
			Int64("author_id", authorID).
			Err(err).
			Msg("Database error while fetching author details")
		response.InternalServerError(c)
		return
	}

	response.Object(c, http.StatusOK, detail)
}

// GetSales - GET /authors/:author_id/sales
// Sales ordered most recent first.
func (h *AuthorHandler) GetSales(c *gin.Context) {
	authorID, ok := parseAuthorID(c)
	if !ok {
		return
	}

	sales, err := h.service.GetSalesHistory(c.Request.Context(), authorID)
	if err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			response.NotFound(c, model.ErrAuthorNotFound.Error())
			return
		}
		log.Error().
			Str("request_id", c.GetString("request_id")).
			Int64("author_id", authorID).
			Err(err).
			Msg("Error fetching sales for author")
		response.InternalServerError(c)
		return
	}

	if len(sales) == 0 {
		response.List(c, http.StatusOK, "No sales found for this author", []model.SaleHistoryRow{})
		return
	}

	response.List(c, http.StatusOK, "Sales fetched successfully", sales)
}

// parseAuthorID reads the :author_id path param. Writes the 400 itself so
// callers just bail out on !ok.
func parseAuthorID(c *gin.Context) (int64, bool) {
	idStr := c.Param("author_id")

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "Author id must be a positive integer")
		return 0, false
	}

	return id, true
}
