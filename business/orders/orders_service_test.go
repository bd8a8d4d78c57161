package orders

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"pterostore/business/product"
	"pterostore/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeOrderRepo struct {
	orders map[string]*domain.Order
	seq    int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	r.seq++
	if order.ID == "" {
		order.ID = "order-" + string(rune('a'+r.seq-1))
	}
	order.CreatedAt = time.Now().Add(time.Duration(r.seq) * time.Second)
	clone := *order
	r.orders[order.ID] = &clone
	return nil
}

func (r *fakeOrderRepo) FindByIDAndUser(ctx context.Context, id, userID string) (domain.Order, error) {
	o, ok := r.orders[id]
	if !ok || o.UserID != userID {
		return domain.Order{}, gorm.ErrRecordNotFound
	}
	return *o, nil
}

func (r *fakeOrderRepo) FindPendingByIDAndUser(ctx context.Context, id, userID string) (domain.Order, error) {
	o, err := r.FindByIDAndUser(ctx, id, userID)
	if err != nil || o.Status != domain.OrderStatusPending {
		return domain.Order{}, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (r *fakeOrderRepo) FindAllByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	// newest first
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].CreatedAt.After(out[i].CreatedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) SetPaymentProof(ctx context.Context, id, publicPath string) error {
	o, ok := r.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.PaymentProof = &publicPath
	return nil
}

type fakeProductRepo struct {
	products map[string]*domain.Product
}

func (r *fakeProductRepo) FindAllActive(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.products {
		if p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) FindActiveByID(ctx context.Context, id string) (domain.Product, error) {
	if p, ok := r.products[id]; ok && p.IsActive {
		return *p, nil
	}
	return domain.Product{}, gorm.ErrRecordNotFound
}

type fakeUserRepo struct {
	users map[string]domain.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error { return nil }

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (domain.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return domain.User{}, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	return domain.User{}, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	return domain.User{}, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindActiveByIdentifier(ctx context.Context, identifier string) (domain.User, error) {
	return domain.User{}, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, id string, fields map[string]interface{}) error {
	return nil
}

func (r *fakeUserRepo) UpdatePassword(ctx context.Context, id string, hashedPassword string) error {
	return nil
}

func fixture() (*ordersService, *fakeOrderRepo, *fakeProductRepo) {
	orderRepo := newFakeOrderRepo()
	productRepo := &fakeProductRepo{products: map[string]*domain.Product{
		"p1": {ID: "p1", Name: "NodeJS Kroco", Category: domain.CategoryNodeJS, RAM: 3, CPU: 100, Price: 5000, Emoji: "🟢", IsActive: true},
		"p2": {ID: "p2", Name: "VPS Lama", Category: domain.CategoryVPS, Price: 10000, IsActive: false},
	}}
	userRepo := &fakeUserRepo{users: map[string]domain.User{
		"u1": {ID: "u1", Email: "budi@example.com", Username: "budi"},
	}}
	return NewOrdersService(orderRepo, productRepo, userRepo), orderRepo, productRepo
}

func TestCreateOrder(t *testing.T) {
	svc, _, productRepo := fixture()
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, "u1", "p1", 3)
	require.NoError(t, err)
	assert.Equal(t, 15000, order.TotalPrice)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, "u1", order.UserID)
	require.NotNil(t, order.Product)
	assert.Equal(t, "NodeJS Kroco", order.Product.Name)

	t.Run("total price is frozen at creation", func(t *testing.T) {
		productRepo.products["p1"].Price = 99999

		stored, err := svc.GetOrder(ctx, order.ID, "u1")
		require.NoError(t, err)
		assert.Equal(t, 15000, stored.TotalPrice)
	})

	t.Run("inactive product", func(t *testing.T) {
		_, err := svc.CreateOrder(ctx, "u1", "p2", 1)
		assert.ErrorIs(t, err, product.ErrProductNotFound)
	})

	t.Run("missing product", func(t *testing.T) {
		_, err := svc.CreateOrder(ctx, "u1", "tidak-ada", 1)
		assert.ErrorIs(t, err, product.ErrProductNotFound)
	})

	t.Run("invalid duration", func(t *testing.T) {
		_, err := svc.CreateOrder(ctx, "u1", "p1", 0)
		assert.ErrorIs(t, err, ErrMissingOrderFields)

		_, err = svc.CreateOrder(ctx, "u1", "p1", -2)
		assert.ErrorIs(t, err, ErrMissingOrderFields)
	})

	t.Run("missing product id", func(t *testing.T) {
		_, err := svc.CreateOrder(ctx, "u1", "", 1)
		assert.ErrorIs(t, err, ErrMissingOrderFields)
	})
}

func TestGetOrderOwnership(t *testing.T) {
	svc, _, _ := fixture()
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, "u1", "p1", 2)
	require.NoError(t, err)

	t.Run("owner sees the order", func(t *testing.T) {
		detail, err := svc.GetOrder(ctx, order.ID, "u1")
		require.NoError(t, err)
		assert.Equal(t, order.ID, detail.ID)
		assert.Equal(t, "budi@example.com", detail.User.Email)
		assert.Equal(t, "", detail.User.Role, "order detail user projection carries no role")
	})

	t.Run("foreign requester gets the missing-order error", func(t *testing.T) {
		_, errForeign := svc.GetOrder(ctx, order.ID, "u2")
		_, errMissing := svc.GetOrder(ctx, "tidak-ada", "u1")
		assert.ErrorIs(t, errForeign, ErrOrderNotFound)
		assert.Equal(t, errMissing, errForeign, "not-owner must be indistinguishable from not-found")
	})
}

func TestListOrdersForUser(t *testing.T) {
	svc, _, _ := fixture()
	ctx := context.Background()

	first, err := svc.CreateOrder(ctx, "u1", "p1", 1)
	require.NoError(t, err)
	second, err := svc.CreateOrder(ctx, "u1", "p1", 2)
	require.NoError(t, err)
	_, err = svc.CreateOrder(ctx, "u2", "p1", 1)
	require.NoError(t, err)

	items, err := svc.ListOrdersForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, second.ID, items[0].ID, "newest first")
	assert.Equal(t, first.ID, items[1].ID)

	t.Run("product projection omits price and category", func(t *testing.T) {
		// The fake repo does not preload; attach the product the way the
		// gorm repo would.
		items[0].Order.Product = nil
		raw, err := json.Marshal(OrderListItem{
			Order:   items[0].Order,
			Product: domain.ProductSummary{ID: "p1", Name: "NodeJS Kroco", RAM: 3, CPU: 100, Emoji: "🟢"},
		})
		require.NoError(t, err)

		var decoded map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(raw, &decoded))

		var prod map[string]interface{}
		require.NoError(t, json.Unmarshal(decoded["product"], &prod))
		assert.NotContains(t, prod, "price")
		assert.NotContains(t, prod, "category")
		assert.Equal(t, "NodeJS Kroco", prod["name"])
	})
}
