package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	authormodel "bookleaf-royalty/internal/domains/author/model"
	"bookleaf-royalty/internal/domains/withdrawal/model"
	"bookleaf-royalty/internal/domains/withdrawal/service"
	"bookleaf-royalty/internal/shared/response"
)

type WithdrawalHandler struct {
	service service.ServiceInterface
}

func NewWithdrawalHandler(svc service.ServiceInterface) *WithdrawalHandler {
	return &WithdrawalHandler{service: svc}
}

// Create - POST /withdrawals
func (h *WithdrawalHandler) Create(c *gin.Context) {
	// Strict decode: extra fields and non-integer amounts are 400s.
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()

	var req model.CreateWithdrawalRequest
	if err := decoder.Decode(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, authormodel.ErrAuthorNotFound):
			response.NotFound(c, authormodel.ErrAuthorNotFound.Error())
		case errors.Is(err, model.ErrAmountExceedsBalance),
			errors.Is(err, model.ErrBelowMinimumWithdrawal):
			response.BadRequest(c, err.Error())
		default:
			var verrs validation.Errors
			if errors.As(err, &verrs) {
				response.BadRequest(c, err.Error())
				return
			}
			log.Error().
				Str("request_id", c.GetString("request_id")).
				Int64("author_id", req.AuthorID).
				Err(err).
				Msg("Unexpected error creating withdrawal")
			response.InternalServerError(c)
		}
		return
	}

	response.Object(c, http.StatusCreated, resp)
}

// GetByAuthor - GET /authors/:author_id/withdrawals
func (h *WithdrawalHandler) GetByAuthor(c *gin.Context) {
	idStr := c.Param("author_id")

	authorID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || authorID <= 0 {
		response.BadRequest(c, "Author id must be a positive integer")
		return
	}

	withdrawals, err := h.service.History(c.Request.Context(), authorID)
	if err != nil {
		if errors.Is(err, authormodel.ErrAuthorNotFound) {
			response.NotFound(c, authormodel.ErrAuthorNotFound.Error())
			return
		}
		log.Error().
			Str("request_id", c.GetString("request_id")).
			Int64("author_id", authorID).
			Err(err).
			Msg("Unexpected error fetching withdrawals")
		response.InternalServerError(c)
		return
	}

	if len(withdrawals) == 0 {
		response.List(c, http.StatusOK, "No withdrawals found for this author", []model.WithdrawalRecord{})
		return
	}

	response.List(c, http.StatusOK, "Withdrawals fetched successfully", withdrawals)
}
