package orders

import (
	"context"
	"errors"

	"pterostore/business/product"
	"pterostore/business/user"
	"pterostore/domain"
	"pterostore/pkg/logger"
	"pterostore/pkg/metrics"

	"gorm.io/gorm"
)

var (
	ErrMissingOrderFields = errors.New("Product ID dan durasi harus diisi")
	// ErrOrderNotFound covers both a genuinely missing order and an order
	// owned by another user. The two cases are intentionally
	// indistinguishable to the caller.
	ErrOrderNotFound = errors.New("Order tidak ditemukan")
)

// OrdersRepository contract interface
type OrdersRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByIDAndUser(ctx context.Context, id, userID string) (domain.Order, error)
	FindPendingByIDAndUser(ctx context.Context, id, userID string) (domain.Order, error)
	FindAllByUser(ctx context.Context, userID string) ([]domain.Order, error)
	SetPaymentProof(ctx context.Context, id, publicPath string) error
}

// OrderDetail is the owner-only read: the order with its product and a
// redacted projection of the buyer.
type OrderDetail struct {
	domain.Order
	User domain.UserSummary `json:"user"`
}

// OrderListItem is the dashboard row. The product projection deliberately
// omits price and category.
type OrderListItem struct {
	domain.Order
	Product domain.ProductSummary `json:"product"`
}

type ordersService struct {
	orderRepo   OrdersRepository
	productRepo product.ProductRepository
	userRepo    user.UserRepository
}

func NewOrdersService(orderRepo OrdersRepository, productRepo product.ProductRepository, userRepo user.UserRepository) *ordersService {
	return &ordersService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// CreateOrder prices the order once, at creation. The stored total is never
// recomputed, so later catalog price changes leave existing orders alone.
func (s *ordersService) CreateOrder(ctx context.Context, userID, productID string, duration int) (domain.Order, error) {
	if productID == "" || duration <= 0 {
		return domain.Order{}, ErrMissingOrderFields
	}

	prod, err := s.productRepo.FindActiveByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, product.ErrProductNotFound
		}
		return domain.Order{}, err
	}

	order := domain.Order{
		UserID:     userID,
		ProductID:  prod.ID,
		Duration:   duration,
		TotalPrice: prod.Price * duration,
		Status:     domain.OrderStatusPending,
	}

	if err := s.orderRepo.Create(ctx, &order); err != nil {
		logger.Error("Failed to create order", err)
		return domain.Order{}, err
	}

	order.Product = &prod
	metrics.OrdersCreated.WithLabelValues(prod.Category).Inc()

	return order, nil
}

// GetOrder returns the order with product and buyer only to its owner.
func (s *ordersService) GetOrder(ctx context.Context, orderID, requesterID string) (OrderDetail, error) {
	order, err := s.orderRepo.FindByIDAndUser(ctx, orderID, requesterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderDetail{}, ErrOrderNotFound
		}
		return OrderDetail{}, err
	}

	owner, err := s.userRepo.FindByID(ctx, order.UserID)
	if err != nil {
		logger.Error("Failed to load order owner", err)
		return OrderDetail{}, err
	}

	return OrderDetail{
		Order: order,
		User: domain.UserSummary{
			ID:       owner.ID,
			Email:    owner.Email,
			Username: owner.Username,
			FullName: owner.FullName,
		},
	}, nil
}

// ListOrdersForUser returns the requester's orders, newest first.
func (s *ordersService) ListOrdersForUser(ctx context.Context, userID string) ([]OrderListItem, error) {
	orders, err := s.orderRepo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]OrderListItem, 0, len(orders))
	for _, order := range orders {
		item := OrderListItem{Order: order}
		if order.Product != nil {
			item.Product = order.Product.Summary()
		}
		item.Order.Product = nil
		items = append(items, item)
	}

	return items, nil
}
