package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/mousa-mostafa/capitone-Furniture/internal/domain"
)

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

// Service holds one cart per session token. Carts live in memory only and
// disappear with their session.
type Service struct {
	mu       sync.Mutex
	carts    map[string]*domain.Cart
	products productRepo
}

func New(products productRepo) *Service {
	return &Service{
		carts:    make(map[string]*domain.Cart),
		products: products,
	}
}

// AddLineInput carries the customization confirmed on the product page.
type AddLineInput struct {
	ProductID   string                 `json:"productId"`
	Fabric      string                 `json:"fabric"`
	Paint       domain.WoodPaint       `json:"paint"`
	Installment domain.InstallmentPlan `json:"installment"`
}

// Confirmation is the local acknowledgment returned on checkout. No order is
// stored anywhere; the factory follows up by phone.
type Confirmation struct {
	Message  string                `json:"message"`
	Shipping domain.ShippingMethod `json:"shipping"`
	Payment  domain.PaymentMethod  `json:"payment"`
	TotalEGP int64                 `json:"totalEGP"`
}

// Get returns the session's cart, creating an empty one with the default
// shipping and payment selections on first use.
func (s *Service) Get(_ context.Context, token string) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyCart(s.cartLocked(token))
}

// AddLine appends a customized line item. Repeated additions of the same
// product create separate lines; there is no quantity merging.
func (s *Service) AddLine(ctx context.Context, token string, in AddLineInput) (domain.Cart, error) {
	if strings.TrimSpace(in.ProductID) == "" {
		return domain.Cart{}, errors.New("productId required")
	}
	if in.Paint != "" && !in.Paint.Valid() {
		return domain.Cart{}, errors.New("unknown wood paint")
	}
	if !in.Installment.Valid() {
		return domain.Cart{}, errors.New("unknown installment plan")
	}
	product, err := s.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return domain.Cart{}, err
	}

	line := domain.LineItem{
		Product:     *product,
		Quantity:    1,
		Fabric:      strings.TrimSpace(in.Fabric),
		Paint:       in.Paint,
		Installment: in.Installment,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cartLocked(token)
	cart.Lines = append(cart.Lines, line)
	return copyCart(cart), nil
}

// RemoveLine drops the line at the given position. An out-of-range index is
// a no-op, not an error.
func (s *Service) RemoveLine(_ context.Context, token string, index int) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cartLocked(token)
	if index >= 0 && index < len(cart.Lines) {
		cart.Lines = append(cart.Lines[:index], cart.Lines[index+1:]...)
	}
	return copyCart(cart)
}

func (s *Service) SetShipping(_ context.Context, token string, m domain.ShippingMethod) (domain.Cart, error) {
	if !m.Valid() {
		return domain.Cart{}, errors.New("unknown shipping method")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cartLocked(token)
	cart.Shipping = m
	return copyCart(cart), nil
}

func (s *Service) SetPayment(_ context.Context, token string, m domain.PaymentMethod) (domain.Cart, error) {
	if !m.Valid() {
		return domain.Cart{}, errors.New("unknown payment method")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cartLocked(token)
	cart.Payment = m
	return copyCart(cart), nil
}

// Checkout acknowledges the order with the selected shipping and payment
// methods. The cart keeps its contents; nothing is submitted anywhere.
func (s *Service) Checkout(_ context.Context, token string) (Confirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cartLocked(token)
	if len(cart.Lines) == 0 {
		return Confirmation{}, errors.New("cart is empty")
	}
	return Confirmation{
		Message: fmt.Sprintf(
			"تم تأكيد الطلب بنجاح! طريقة الشحن: %s، طريقة الدفع: %s. سيتم التواصل معكم من قبل خدمة عملاء مصنع كابتونيه.",
			cart.Shipping.Label(), cart.Payment.Label(),
		),
		Shipping: cart.Shipping,
		Payment:  cart.Payment,
		TotalEGP: cart.TotalEGP(),
	}, nil
}

// Drop discards the session's cart. Called when the owning session ends.
func (s *Service) Drop(token string) {
	s.mu.Lock()
	delete(s.carts, token)
	s.mu.Unlock()
}

func (s *Service) cartLocked(token string) *domain.Cart {
	cart, ok := s.carts[token]
	if !ok {
		cart = &domain.Cart{
			Shipping: domain.DefaultShipping,
			Payment:  domain.DefaultPayment,
		}
		s.carts[token] = cart
	}
	return cart
}

func copyCart(cart *domain.Cart) domain.Cart {
	out := *cart
	out.Lines = make([]domain.LineItem, len(cart.Lines))
	copy(out.Lines, cart.Lines)
	return out
}
