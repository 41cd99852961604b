package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/handler"
	mocks "github.com/SergeyBogomolovv/storefront-checkout/internal/handler/mocks"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storeRouter(orders handler.OrderReader, store handler.StoreService) chi.Router {
	auth := middleware.NewAuth(testSecret)
	h := handler.NewStoreHandler(discardLogger(), orders, store, auth)
	r := chi.NewRouter()
	r.Use(auth.Optional)
	h.Init(r)
	return r
}

func withToken(t *testing.T, req *http.Request, customerID int64) *http.Request {
	t.Helper()
	token, err := middleware.NewAuth(testSecret).Sign(customerID, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestStoreHandler_GetOrder(t *testing.T) {
	order := entities.Order{
		ID:            11,
		CustomerEmail: "guest@example.com",
		Amount:        500000,
		Currency:      "IRR",
		Status:        entities.OrderProcessing,
		Items:         []entities.LineItem{{ProductID: 1, Quantity: 2}},
		CreatedAt:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	testCases := []struct {
		name         string
		target       string
		customerID   int64
		mockBehavior func(orders *mocks.MockOrderReader)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "guest with email",
			target: "/api/orders/11?email=guest@example.com",
			mockBehavior: func(orders *mocks.MockOrderReader) {
				orders.EXPECT().
					GetOrder(mock.Anything, int64(11), (*int64)(nil), "guest@example.com").
					Return(order, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":11`,
		},
		{
			name:       "authenticated customer on order page",
			target:     "/orders/11",
			customerID: 5,
			mockBehavior: func(orders *mocks.MockOrderReader) {
				orders.EXPECT().
					GetOrder(mock.Anything, int64(11), ptr[int64](5), "").
					Return(order, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"processing"`,
		},
		{
			name:   "not accessible",
			target: "/api/orders/11",
			mockBehavior: func(orders *mocks.MockOrderReader) {
				orders.EXPECT().
					GetOrder(mock.Anything, int64(11), (*int64)(nil), "").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:         "bad id",
			target:       "/api/orders/abc",
			mockBehavior: func(orders *mocks.MockOrderReader) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "zero id",
			target:       "/api/orders/0",
			mockBehavior: func(orders *mocks.MockOrderReader) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:   "internal error",
			target: "/api/orders/11",
			mockBehavior: func(orders *mocks.MockOrderReader) {
				orders.EXPECT().
					GetOrder(mock.Anything, int64(11), (*int64)(nil), "").
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockOrderReader(t)
			tc.mockBehavior(orders)

			req := newJSONRequest(http.MethodGet, tc.target, "")
			if tc.customerID != 0 {
				req = withToken(t, req, tc.customerID)
			}
			res, body := do(t, storeRouter(orders, mocks.NewMockStoreService(t)), req)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)

			if tc.wantStatus == http.StatusOK {
				var resp handler.Order
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, int64(500000), resp.Amount)
				assert.Equal(t, []int64{}, resp.Transactions)
			}
		})
	}
}

func TestStoreHandler_GetCart(t *testing.T) {
	store := mocks.NewMockStoreService(t)
	store.EXPECT().
		GetCart(mock.Anything, int64(7)).
		Return(entities.Cart{ID: 7, Subtotal: 4200, SubtotalIRT: 50000, Currency: "usd", Status: entities.CartActive,
			Items: []entities.LineItem{{ProductID: 1, Quantity: 1}}}, nil).Once()
	store.EXPECT().
		GetCart(mock.Anything, int64(8)).
		Return(entities.Cart{}, entities.ErrCartNotFound).Once()

	r := storeRouter(mocks.NewMockOrderReader(t), store)

	res, body := serve(t, r, http.MethodGet, "/api/carts/7", "")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"subtotalIRT":50000`)

	res, _ = serve(t, r, http.MethodGet, "/api/carts/8", "")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestStoreHandler_Addresses(t *testing.T) {
	address := entities.Address{FirstName: "Sara", AddressLine1: "1 Main St", City: "Austin", Country: "US"}

	t.Run("requires authentication", func(t *testing.T) {
		r := storeRouter(mocks.NewMockOrderReader(t), mocks.NewMockStoreService(t))

		res, _ := serve(t, r, http.MethodGet, "/api/addresses", "")
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})

	t.Run("list", func(t *testing.T) {
		store := mocks.NewMockStoreService(t)
		store.EXPECT().
			ListAddresses(mock.Anything, int64(5)).
			Return([]entities.SavedAddress{{ID: 3, CustomerID: 5, Address: address}}, nil).Once()

		req := withToken(t, newJSONRequest(http.MethodGet, "/api/addresses", ""), 5)
		res, body := do(t, storeRouter(mocks.NewMockOrderReader(t), store), req)

		assert.Equal(t, http.StatusOK, res.StatusCode)
		var resp []handler.SavedAddress
		require.NoError(t, json.Unmarshal([]byte(body), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, int64(3), resp[0].ID)
		assert.Equal(t, "Austin", resp[0].City)
	})

	t.Run("save", func(t *testing.T) {
		store := mocks.NewMockStoreService(t)
		store.EXPECT().
			SaveAddress(mock.Anything, int64(5), address).
			Return(entities.SavedAddress{ID: 4, CustomerID: 5, Address: address}, nil).Once()

		req := withToken(t, newJSONRequest(http.MethodPost, "/api/addresses",
			`{"firstName":"Sara","addressLine1":"1 Main St","city":"Austin","country":"US"}`), 5)
		res, body := do(t, storeRouter(mocks.NewMockOrderReader(t), store), req)

		assert.Equal(t, http.StatusCreated, res.StatusCode)
		assert.Contains(t, body, `"id":4`)
	})

	t.Run("save invalid", func(t *testing.T) {
		req := withToken(t, newJSONRequest(http.MethodPost, "/api/addresses", `{"firstName":"Sara"}`), 5)
		res, body := do(t, storeRouter(mocks.NewMockOrderReader(t), mocks.NewMockStoreService(t)), req)

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, body, `"city":"required"`)
	})
}
