package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var cartColumns = []string{
	"id", "customer_id", "currency", "subtotal", "subtotal_irt",
	"status", "purchased_at", "created_at",
}

func (r *postgresRepo) GetCart(ctx context.Context, id int64) (entities.Cart, error) {
	query, args := r.qb.Select(cartColumns...).
		From("carts").
		Where(sq.Eq{"id": id}).
		MustSql()
	return r.loadCart(ctx, id, query, args)
}

// LockCart loads the cart and holds a row lock on it until the surrounding
// transaction ends.
func (r *postgresRepo) LockCart(ctx context.Context, id int64) (entities.Cart, error) {
	query, args := r.qb.Select(cartColumns...).
		From("carts").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		MustSql()
	return r.loadCart(ctx, id, query, args)
}

func (r *postgresRepo) loadCart(ctx context.Context, id int64, query string, args []any) (entities.Cart, error) {
	var cart Cart
	err := r.getContext(ctx, &cart, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Cart{}, entities.ErrCartNotFound
	}
	if err != nil {
		return entities.Cart{}, fmt.Errorf("failed to get cart: %w", err)
	}

	query, args = r.qb.Select("cart_id AS parent_id", "product_id", "variant_id", "quantity").
		From("cart_items").
		Where(sq.Eq{"cart_id": id}).
		OrderBy("id").
		MustSql()

	var items []LineItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Cart{}, fmt.Errorf("failed to get cart items: %w", err)
	}

	return CartToEntity(cart, items), nil
}

// MarkCartPurchased empties the cart and moves it to the purchased state.
func (r *postgresRepo) MarkCartPurchased(ctx context.Context, id int64, at time.Time) error {
	query, args := r.qb.Delete("cart_items").
		Where(sq.Eq{"cart_id": id}).
		MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear cart items: %w", err)
	}

	query, args = r.qb.Update("carts").
		Set("subtotal", 0).
		Set("subtotal_irt", 0).
		Set("status", string(entities.CartPurchased)).
		Set("purchased_at", at).
		Set("updated_at", at).
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update cart: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entities.ErrCartNotFound
	}
	return nil
}

type inventoryRow struct {
	ID        int64 `db:"id"`
	Inventory int   `db:"inventory"`
}

// CheckStock returns the cart lines whose quantity exceeds current inventory.
// Variant lines are checked against the variant, others against the product.
func (r *postgresRepo) CheckStock(ctx context.Context, items []entities.LineItem) ([]entities.StockShortage, error) {
	type stockKey struct {
		product int64
		variant int64
	}

	requested := make(map[stockKey]int, len(items))
	var productIDs, variantIDs []int64
	for _, it := range items {
		k := stockKey{product: it.ProductID}
		if it.VariantID != nil {
			k.variant = *it.VariantID
			if _, seen := requested[k]; !seen {
				variantIDs = append(variantIDs, k.variant)
			}
		} else if _, seen := requested[k]; !seen {
			productIDs = append(productIDs, k.product)
		}
		requested[k] += it.Quantity
	}

	products, err := r.inventory(ctx, "products", productIDs)
	if err != nil {
		return nil, err
	}
	variants, err := r.inventory(ctx, "variants", variantIDs)
	if err != nil {
		return nil, err
	}

	var shortages []entities.StockShortage
	for _, it := range items {
		k := stockKey{product: it.ProductID}
		available := products[it.ProductID]
		if it.VariantID != nil {
			k.variant = *it.VariantID
			available = variants[k.variant]
		}
		qty, ok := requested[k]
		if !ok {
			continue
		}
		delete(requested, k)
		if qty > available {
			shortages = append(shortages, entities.StockShortage{
				ProductID: it.ProductID,
				VariantID: it.VariantID,
				Requested: qty,
				Available: available,
			})
		}
	}
	return shortages, nil
}

func (r *postgresRepo) inventory(ctx context.Context, table string, ids []int64) (map[int64]int, error) {
	res := make(map[int64]int, len(ids))
	if len(ids) == 0 {
		return res, nil
	}

	query, args := r.qb.Select("id", "inventory").
		From(table).
		Where(sq.Eq{"id": ids}).
		MustSql()

	var rows []inventoryRow
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get %s inventory: %w", table, err)
	}
	for _, row := range rows {
		res[row.ID] = row.Inventory
	}
	return res, nil
}
