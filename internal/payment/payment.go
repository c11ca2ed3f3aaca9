// Package payment creates Razorpay orders for feature unlocks and verifies
// checkout signatures before an entitlement is granted.
package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"

	apperrors "github.com/conspirant/kcet-planner-go/internal/errors"
)

// Order is the subset of a Razorpay order returned to the client, enough
// to open the checkout widget.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

// orderCreator matches the Order service of the Razorpay client.
type orderCreator interface {
	Create(data map[string]interface{}, options map[string]string) (map[string]interface{}, error)
}

// Service talks to Razorpay.
type Service struct {
	orders    orderCreator
	keySecret string
}

// New creates a service from API credentials.
func New(keyID, keySecret string) *Service {
	client := razorpay.NewClient(keyID, keySecret)
	return &Service{orders: client.Order, keySecret: keySecret}
}

// newWithCreator is the test seam.
func newWithCreator(orders orderCreator, keySecret string) *Service {
	return &Service{orders: orders, keySecret: keySecret}
}

// CreateOrder creates an INR order for the given amount in paise.
func (s *Service) CreateOrder(amountPaise int64, receipt string) (*Order, error) {
	if amountPaise <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrInvalidInput)
	}

	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": "INR",
		"receipt":  receipt,
	}
	resp, err := s.orders.Create(data, nil)
	if err != nil {
		return nil, &apperrors.ProviderError{Operation: "create_order", Err: err}
	}

	order := &Order{Currency: "INR"}
	if id, ok := resp["id"].(string); ok {
		order.ID = id
	}
	if amount, ok := resp["amount"].(float64); ok {
		order.Amount = int64(amount)
	} else if amount, ok := resp["amount"].(int64); ok {
		order.Amount = amount
	}
	if currency, ok := resp["currency"].(string); ok {
		order.Currency = currency
	}
	if status, ok := resp["status"].(string); ok {
		order.Status = status
	}
	if order.ID == "" {
		return nil, &apperrors.ProviderError{
			Operation: "create_order",
			Err:       fmt.Errorf("response missing order id"),
		}
	}
	return order, nil
}

// VerifyCheckoutSignature checks the HMAC the Razorpay checkout posts back
// after a successful payment. The signature is hex(HMAC-SHA256(order_id +
// "|" + payment_id)) keyed with the API secret. Comparison is constant
// time.
func (s *Service) VerifyCheckoutSignature(orderID, paymentID, signature string) error {
	if orderID == "" || paymentID == "" || signature == "" {
		return fmt.Errorf("%w: order_id, payment_id and signature are required", apperrors.ErrInvalidInput)
	}

	mac := hmac.New(sha256.New, []byte(s.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return apperrors.ErrSignatureMismatch
	}
	return nil
}
