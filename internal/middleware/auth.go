package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"

	"github.com/dgrijalva/jwt-go"
)

type customerKey struct{}

// CustomerID returns the authenticated customer, or nil for guests.
func CustomerID(ctx context.Context) *int64 {
	id, ok := ctx.Value(customerKey{}).(int64)
	if !ok {
		return nil
	}
	return &id
}

func WithCustomerID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, customerKey{}, id)
}

// Auth reads customer identity from HS256 bearer tokens issued by the
// storefront. The customer id is carried in the customer_id claim.
type Auth struct {
	secret []byte
}

func NewAuth(secret string) *Auth {
	return &Auth{secret: []byte(secret)}
}

// Optional lets guests through and rejects only malformed or expired tokens.
func (a *Auth) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearer(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		id, err := a.Parse(token)
		if err != nil {
			utils.WriteError(w, "invalid token", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithCustomerID(r.Context(), id)))
	})
}

func (a *Auth) Required(next http.Handler) http.Handler {
	return a.Optional(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if CustomerID(r.Context()) == nil {
			utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	}))
}

func (a *Auth) Parse(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return 0, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, errors.New("invalid token")
	}

	switch v := claims["customer_id"].(type) {
	case float64:
		if v > 0 && v == float64(int64(v)) {
			return int64(v), nil
		}
	case string:
		if id, err := strconv.ParseInt(v, 10, 64); err == nil && id > 0 {
			return id, nil
		}
	}
	return 0, errors.New("token has no customer_id")
}

// Sign issues a token for customerID. Used by tests and local tooling.
func (a *Auth) Sign(customerID int64, claims jwt.MapClaims) (string, error) {
	if claims == nil {
		claims = jwt.MapClaims{}
	}
	claims["customer_id"] = customerID
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

func bearer(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(h, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}
