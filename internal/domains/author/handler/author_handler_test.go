package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookleaf-royalty/internal/domains/author/model"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	decimal.MarshalJSONWithoutQuotes = true
	m.Run()
}

type fakeService struct {
	authors []model.AuthorBalance
	detail  *model.AuthorDetailResponse
	sales   []model.SaleHistoryRow
	err     error
}

func (f *fakeService) Balance(context.Context, int64) (model.Balance, error) {
	return model.Balance{}, f.err
}

func (f *fakeService) ListAuthors(context.Context) ([]model.AuthorBalance, error) {
	return f.authors, f.err
}

func (f *fakeService) GetAuthorDetail(context.Context, int64) (*model.AuthorDetailResponse, error) {
	return f.detail, f.err
}

func (f *fakeService) GetSalesHistory(context.Context, int64) ([]model.SaleHistoryRow, error) {
	return f.sales, f.err
}

func setupRouter(svc *fakeService) *gin.Engine {
	h := NewAuthorHandler(svc)
	router := gin.New()
	router.GET("/authors", h.GetAll)
	router.GET("/authors/:author_id", h.GetByID)
	router.GET("/authors/:author_id/sales", h.GetSales)
	return router
}

func doRequest(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestGetAllAuthors(t *testing.T) {
	svc := &fakeService{authors: []model.AuthorBalance{
		{ID: 1, Name: "Priya Sharma", TotalEarnings: decimal.NewFromInt(3825), CurrentBalance: decimal.NewFromInt(3825)},
	}}
	w := doRequest(setupRouter(svc), http.MethodGet, "/authors")

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Detail string `json:"detail"`
		Data   []struct {
			ID             int64   `json:"id"`
			Name           string  `json:"name"`
			TotalEarnings  float64 `json:"total_earnings"`
			CurrentBalance float64 `json:"current_balance"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "Authors fetched successfully", body.Detail)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Priya Sharma", body.Data[0].Name)
	assert.InDelta(t, 3825.0, body.Data[0].TotalEarnings, 0.001)
}

func TestGetAllAuthorsEmpty(t *testing.T) {
	w := doRequest(setupRouter(&fakeService{}), http.MethodGet, "/authors")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No author found")
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestGetAllAuthorsFailure(t *testing.T) {
	svc := &fakeService{err: errors.New("connection refused")}
	w := doRequest(setupRouter(svc), http.MethodGet, "/authors")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	// Internal detail never reaches the client.
	assert.NotContains(t, w.Body.String(), "connection refused")
	assert.Contains(t, w.Body.String(), "Internal Server Error")
}

func TestGetAuthorByID(t *testing.T) {
	email := "priya@email.com"
	svc := &fakeService{detail: &model.AuthorDetailResponse{
		ID:             1,
		Name:           "Priya Sharma",
		Email:          &email,
		TotalBooks:     2,
		TotalEarnings:  decimal.NewFromInt(3825),
		CurrentBalance: decimal.NewFromInt(3825),
		Books: []model.BookBreakdown{
			{ID: 1, Title: "The Silent River", RoyaltyPerSale: decimal.NewFromInt(45), TotalSold: 65, TotalRoyalty: decimal.NewFromInt(2925)},
		},
	}}
	w := doRequest(setupRouter(svc), http.MethodGet, "/authors/1")

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.EqualValues(t, 2, body["total_books"])
	assert.EqualValues(t, 3825, body["total_earnings"])
	assert.Len(t, body["books"], 1)
}

func TestGetAuthorByIDNotFound(t *testing.T) {
	svc := &fakeService{err: model.ErrAuthorNotFound}
	w := doRequest(setupRouter(svc), http.MethodGet, "/authors/99")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Author not found")
}

func TestGetAuthorByIDInvalid(t *testing.T) {
	for _, path := range []string{"/authors/abc", "/authors/0", "/authors/-1"} {
		w := doRequest(setupRouter(&fakeService{}), http.MethodGet, path)
		assert.Equal(t, http.StatusBadRequest, w.Code, "path %s", path)
	}
}

func TestGetSales(t *testing.T) {
	svc := &fakeService{sales: []model.SaleHistoryRow{
		{BookTitle: "The Silent River", Quantity: 40, RoyaltyEarned: decimal.NewFromInt(1800), SaleDate: time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)},
		{BookTitle: "The Silent River", Quantity: 25, RoyaltyEarned: decimal.NewFromInt(1125), SaleDate: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)},
	}}
	w := doRequest(setupRouter(svc), http.MethodGet, "/authors/1/sales")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sales fetched successfully")
	// Dates serialize as ISO-8601.
	assert.Contains(t, w.Body.String(), "2025-01-12T00:00:00Z")
}

func TestGetSalesEmpty(t *testing.T) {
	w := doRequest(setupRouter(&fakeService{}), http.MethodGet, "/authors/1/sales")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No sales found for this author")
}

func TestGetSalesUnknownAuthor(t *testing.T) {
	svc := &fakeService{err: model.ErrAuthorNotFound}
	w := doRequest(setupRouter(svc), http.MethodGet, "/authors/99/sales")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Author not found")
}
