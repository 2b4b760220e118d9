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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authormodel "bookleaf-royalty/internal/domains/author/model"
	"bookleaf-royalty/internal/domains/withdrawal/model"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	decimal.MarshalJSONWithoutQuotes = true
	m.Run()
}

// fakeService checks the request against a fixed balance, like the real
// processor but without storage.
type fakeService struct {
	balance decimal.Decimal
	exists  bool
	history []model.WithdrawalRecord
	err     error

	created int
}

func (f *fakeService) Create(_ context.Context, req *model.CreateWithdrawalRequest) (*model.WithdrawalResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	if !f.exists {
		return nil, authormodel.ErrAuthorNotFound
	}
	amount := decimal.NewFromInt(req.Amount)
	if amount.GreaterThan(f.balance) {
		return nil, model.ErrAmountExceedsBalance
	}
	f.created++
	return &model.WithdrawalResponse{
		ID:         1,
		AuthorID:   req.AuthorID,
		Amount:     amount,
		Status:     model.StatusPending,
		NewBalance: f.balance.Sub(amount),
		CreatedAt:  time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC),
	}, nil
}

func (f *fakeService) History(context.Context, int64) ([]model.WithdrawalRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	if !f.exists {
		return nil, authormodel.ErrAuthorNotFound
	}
	return f.history, nil
}

func setupRouter(svc *fakeService) *gin.Engine {
	h := NewWithdrawalHandler(svc)
	router := gin.New()
	router.POST("/withdrawals", h.Create)
	router.GET("/authors/:author_id/withdrawals", h.GetByAuthor)
	return router
}

func postWithdrawal(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/withdrawals", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCreateWithdrawal(t *testing.T) {
	svc := &fakeService{balance: decimal.NewFromInt(3825), exists: true}
	w := postWithdrawal(setupRouter(svc), `{"author_id": 1, "amount": 500}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		ID         int64   `json:"id"`
		AuthorID   int64   `json:"author_id"`
		Amount     float64 `json:"amount"`
		Status     string  `json:"status"`
		NewBalance float64 `json:"new_balance"`
		CreatedAt  string  `json:"created_at"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, int64(1), body.AuthorID)
	assert.Equal(t, "pending", body.Status)
	assert.InDelta(t, 500.0, body.Amount, 0.001)
	assert.InDelta(t, 3325.0, body.NewBalance, 0.001)
	assert.Equal(t, "2025-02-01T10:00:00Z", body.CreatedAt)
	assert.Equal(t, 1, svc.created)
}

func TestCreateWithdrawalExceedsBalance(t *testing.T) {
	svc := &fakeService{balance: decimal.NewFromInt(3825), exists: true}
	w := postWithdrawal(setupRouter(svc), `{"author_id": 1, "amount": 4000}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Withdrawal amount exceeds current balance")
	assert.Zero(t, svc.created)
}

func TestCreateWithdrawalBelowMinimum(t *testing.T) {
	svc := &fakeService{balance: decimal.NewFromInt(3825), exists: true}
	w := postWithdrawal(setupRouter(svc), `{"author_id": 1, "amount": 499}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Minimum withdrawal amount")
	assert.Zero(t, svc.created)
}

func TestCreateWithdrawalUnknownAuthor(t *testing.T) {
	svc := &fakeService{exists: false}
	w := postWithdrawal(setupRouter(svc), `{"author_id": 42, "amount": 500}`)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Author not found")
}

func TestCreateWithdrawalRejectsExtraFields(t *testing.T) {
	svc := &fakeService{balance: decimal.NewFromInt(3825), exists: true}
	w := postWithdrawal(setupRouter(svc), `{"author_id": 1, "amount": 500, "status": "approved"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.created)
}

func TestCreateWithdrawalRejectsMalformedBody(t *testing.T) {
	svc := &fakeService{balance: decimal.NewFromInt(3825), exists: true}

	for _, body := range []string{
		``,
		`{`,
		`{"author_id": 1, "amount": 500.5}`,
		`{"author_id": "one", "amount": 500}`,
	} {
		w := postWithdrawal(setupRouter(svc), body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
	}
	assert.Zero(t, svc.created)
}

func TestCreateWithdrawalNonPositiveInput(t *testing.T) {
	svc := &fakeService{balance: decimal.NewFromInt(3825), exists: true}

	for _, body := range []string{
		`{"author_id": 0, "amount": 500}`,
		`{"author_id": -1, "amount": 500}`,
		`{"author_id": 1, "amount": 0}`,
		`{"author_id": 1, "amount": -500}`,
	} {
		w := postWithdrawal(setupRouter(svc), body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
	}
	assert.Zero(t, svc.created)
}

func TestGetWithdrawals(t *testing.T) {
	svc := &fakeService{exists: true, history: []model.WithdrawalRecord{
		{ID: 2, AuthorID: 1, Amount: decimal.NewFromInt(600), Status: model.StatusPending, CreatedAt: time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC)},
		{ID: 1, AuthorID: 1, Amount: decimal.NewFromInt(500), Status: model.StatusPending, CreatedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
	}}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/authors/1/withdrawals", nil)
	setupRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Withdrawals fetched successfully")

	var body struct {
		Data []struct {
			ID     int64   `json:"id"`
			Amount float64 `json:"amount"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, int64(2), body.Data[0].ID)
}

func TestGetWithdrawalsEmpty(t *testing.T) {
	svc := &fakeService{exists: true}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/authors/1/withdrawals", nil)
	setupRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No withdrawals found for this author")
}

func TestGetWithdrawalsUnknownAuthor(t *testing.T) {
	svc := &fakeService{exists: false}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/authors/99/withdrawals", nil)
	setupRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Author not found")
}
