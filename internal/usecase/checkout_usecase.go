package usecase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"storefront/internal/domain/model"

	"github.com/shopspring/decimal"
)

const (
	MsgEmptyCart = "Su carrito está vacío. Por favor, añada productos antes de contactar."

	orderGreeting = "¡Hola! Me gustaría hacer un pedido con los siguientes productos:\n\n"
	orderClosing  = "\n\nPor favor, confirme mi pedido."
)

type CheckoutResult struct {
	URL     string          `json:"url"`
	Message string          `json:"message"`
	Total   decimal.Decimal `json:"total"`
	Count   int             `json:"count"`
}

// CheckoutUsecase turns a cart into a WhatsApp order link. It never touches the cart.
type CheckoutUsecase struct {
	carts  CartStore
	config StoreConfigStore
}

func NewCheckoutUsecase(carts CartStore, config StoreConfigStore) *CheckoutUsecase {
	return &CheckoutUsecase{carts: carts, config: config}
}

func (u *CheckoutUsecase) Checkout(ctx context.Context, sessionID string) (CheckoutResult, error) {
	if strings.TrimSpace(sessionID) == "" {
		return CheckoutResult{}, NewHTTPError(http.StatusBadRequest, "missing cart session")
	}

	cart := u.carts.Load(ctx, sessionID)
	if cart.IsEmpty() {
		return CheckoutResult{}, NewHTTPError(http.StatusUnprocessableEntity, MsgEmptyCart)
	}

	digits := u.config.Load(ctx).WhatsAppDigits()
	if digits == "" {
		return CheckoutResult{}, NewHTTPError(http.StatusServiceUnavailable, "whatsapp number is not configured")
	}

	msg := OrderMessage(cart)
	return CheckoutResult{
		URL:     WhatsAppLink(digits, msg),
		Message: msg,
		Total:   cart.Total(),
		Count:   cart.Count(),
	}, nil
}

// OrderMessage lists every line with its unit price, then the total.
func OrderMessage(cart model.Cart) string {
	var b strings.Builder
	b.WriteString(orderGreeting)
	for _, it := range cart.Items {
		fmt.Fprintf(&b, "- %s (x%d) - Bs %s cada uno\n", it.Name, it.Quantity, FormatBs(it.UnitPrice))
	}
	fmt.Fprintf(&b, "\nTotal a pagar: Bs %s", FormatBs(cart.Total()))
	b.WriteString(orderClosing)
	return b.String()
}

func WhatsAppLink(digits string, text string) string {
	return "https://wa.me/" + digits + "?text=" + encodeURIComponent(text)
}

// url.QueryEscape differs from the browser's encodeURIComponent on these.
var uriComponentFixes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeURIComponent(s string) string {
	return uriComponentFixes.Replace(url.QueryEscape(s))
}
