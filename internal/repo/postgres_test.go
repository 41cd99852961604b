package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/config"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/postgres"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/repo"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/trm"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := postgres.Connect(dsn, config.Postgres{MaxOpenConns: 5})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, postgres.Migrate(db))
	return db
}

type fixture struct {
	customerID int64
	productID  int64
	variantID  int64
	cartID     int64
}

func seed(t *testing.T, db *sqlx.DB) fixture {
	var f fixture
	require.NoError(t, db.Get(&f.customerID, `INSERT INTO customers (email) VALUES ('owner@example.com') RETURNING id`))
	require.NoError(t, db.Get(&f.productID, `INSERT INTO products (title, inventory, price_in_usd, price_in_irt) VALUES ('Tea', 5, 1000, 250000) RETURNING id`))
	require.NoError(t, db.Get(&f.variantID, `INSERT INTO variants (product_id, title, inventory) VALUES ($1, 'Large', 1) RETURNING id`, f.productID))
	require.NoError(t, db.Get(&f.cartID, `INSERT INTO carts (customer_id, currency, subtotal, subtotal_irt) VALUES ($1, 'USD', 500000, 125000) RETURNING id`, f.customerID))
	db.MustExec(`INSERT INTO cart_items (cart_id, product_id, quantity) VALUES ($1, $2, 2)`, f.cartID, f.productID)
	db.MustExec(`INSERT INTO cart_items (cart_id, product_id, variant_id, quantity) VALUES ($1, $2, $3, 1)`, f.cartID, f.productID, f.variantID)
	return f
}

func TestPostgresRepo_Carts(t *testing.T) {
	db := setupTestDB(t)
	f := seed(t, db)
	r := repo.NewPostgresRepo(db)
	ctx := context.Background()

	cart, err := r.GetCart(ctx, f.cartID)
	require.NoError(t, err)
	assert.Equal(t, entities.CartActive, cart.Status)
	assert.EqualValues(t, 500000, cart.Subtotal)
	require.Len(t, cart.Items, 2)
	require.NotNil(t, cart.CustomerID)
	assert.Equal(t, f.customerID, *cart.CustomerID)

	shortages, err := r.CheckStock(ctx, cart.Items)
	require.NoError(t, err)
	assert.Empty(t, shortages)

	variant := f.variantID
	shortages, err = r.CheckStock(ctx, []entities.LineItem{{ProductID: f.productID, VariantID: &variant, Quantity: 3}})
	require.NoError(t, err)
	require.Len(t, shortages, 1)
	assert.Equal(t, 1, shortages[0].Available)

	tm := trm.NewManager(db)
	err = tm.Do(ctx, func(ctx context.Context) error {
		if _, err := r.LockCart(ctx, f.cartID); err != nil {
			return err
		}
		return r.MarkCartPurchased(ctx, f.cartID, time.Now())
	})
	require.NoError(t, err)

	cart, err = r.GetCart(ctx, f.cartID)
	require.NoError(t, err)
	assert.Equal(t, entities.CartPurchased, cart.Status)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Subtotal)
	assert.NotNil(t, cart.PurchasedAt)

	_, err = r.GetCart(ctx, 9999)
	assert.ErrorIs(t, err, entities.ErrCartNotFound)
}

func TestPostgresRepo_OrderAndTransaction(t *testing.T) {
	db := setupTestDB(t)
	f := seed(t, db)
	r := repo.NewPostgresRepo(db)
	ctx := context.Background()

	ref := entities.ZarinpalRef("A123", "201", "502229******5995")
	txID, err := r.CreateTransaction(ctx, entities.Transaction{
		Status:         entities.TransactionSucceeded,
		Amount:         500000,
		Currency:       "USD",
		CartID:         f.cartID,
		CustomerID:     &f.customerID,
		Reference:      ref,
		IdempotencyKey: ref.IdempotencyKey(),
		CreatedAt:      time.Now(),
	})
	require.NoError(t, err)

	shipping := entities.Address{FirstName: "Sara", City: "Tehran", Country: "IR"}
	orderID, err := r.CreateOrder(ctx, entities.Order{
		CustomerID:      &f.customerID,
		Amount:          500000,
		Currency:        "USD",
		Status:          entities.OrderProcessing,
		Items:           []entities.LineItem{{ProductID: f.productID, Quantity: 2}},
		ShippingAddress: &shipping,
		CreatedAt:       time.Now(),
	})
	require.NoError(t, err)
	require.NoError(t, r.LinkTransactionOrder(ctx, txID, orderID))

	order, err := r.GetOrderByID(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, []int64{txID}, order.TransactionIDs)
	assert.Equal(t, &shipping, order.ShippingAddress)
	assert.Len(t, order.Items, 1)

	tx, err := r.GetTransactionByIdempotencyKey(ctx, "zarinpal:A123")
	require.NoError(t, err)
	assert.Equal(t, ref, tx.Reference)
	require.NotNil(t, tx.OrderID)
	assert.Equal(t, orderID, *tx.OrderID)

	var reference string
	require.NoError(t, db.Get(&reference, `SELECT reference FROM transactions WHERE id = $1`, txID))
	assert.Equal(t, "zarinpal_201_A123", reference)

	_, err = r.GetTransactionByIdempotencyKey(ctx, "zarinpal:missing")
	assert.ErrorIs(t, err, entities.ErrTransactionNotFound)
}

func TestPostgresRepo_PendingLifecycle(t *testing.T) {
	db := setupTestDB(t)
	f := seed(t, db)
	r := repo.NewPostgresRepo(db)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, r.SavePending(ctx, entities.PendingPayment{
		Authority: "A123",
		CartID:    &f.cartID,
		Amount:    5000000,
		Currency:  "IRR",
		Status:    entities.PendingAwaiting,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}))
	require.NoError(t, r.SavePending(ctx, entities.PendingPayment{
		Authority: "OLD",
		Amount:    10000,
		Currency:  "IRR",
		Status:    entities.PendingAwaiting,
		CreatedAt: now.Add(-2 * time.Hour),
		ExpiresAt: now.Add(-time.Hour),
	}))

	expired, err := r.ExpirePending(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, expired)

	require.NoError(t, r.MarkPendingVerified(ctx, "A123", "201", "5022"))
	assert.ErrorIs(t, r.MarkPendingCancelled(ctx, "A123"), entities.ErrPendingPaymentNotFound)

	p, err := r.GetPending(ctx, "A123")
	require.NoError(t, err)
	assert.Equal(t, entities.PendingVerified, p.Status)
	assert.Equal(t, "201", p.RefID)

	old, err := r.GetPending(ctx, "OLD")
	require.NoError(t, err)
	assert.Equal(t, entities.PendingExpired, old.Status)
}

func TestPostgresRepo_Outbox(t *testing.T) {
	db := setupTestDB(t)
	r := repo.NewPostgresRepo(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, r.InsertEvent(ctx, entities.OutboxEvent{
			EventID:   uuid.NewString(),
			Type:      entities.EventOrderCreated,
			Key:       "1",
			Payload:   []byte(`{"orderId":1}`),
			CreatedAt: time.Now(),
		}))
	}

	events, err := r.FetchUnsent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.JSONEq(t, `{"orderId":1}`, string(events[0].Payload))

	require.NoError(t, r.MarkSent(ctx, []int64{events[0].ID, events[1].ID}, time.Now()))

	events, err = r.FetchUnsent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestPostgresRepo_Addresses(t *testing.T) {
	db := setupTestDB(t)
	f := seed(t, db)
	r := repo.NewPostgresRepo(db)
	ctx := context.Background()

	saved, err := r.SaveAddress(ctx, f.customerID, entities.Address{FirstName: "Sara", City: "Tehran", Country: "IR", Phone: "09123456789"})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)

	got, err := r.GetAddress(ctx, f.customerID, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.Address, got.Address)

	_, err = r.GetAddress(ctx, f.customerID+1, saved.ID)
	assert.ErrorIs(t, err, entities.ErrAddressNotFound)

	list, err := r.ListAddresses(ctx, f.customerID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
