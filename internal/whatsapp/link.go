package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// ===============================
// Pedido de almoço via WhatsApp
// ===============================

type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Order struct {
	CustomerName string      `json:"customer_name"`
	Items        []OrderItem `json:"items"`
	Note         string      `json:"note"`
}

// BuildOrderMessage monta o texto do pedido que o cliente envia
// para o restaurante.
func BuildOrderMessage(o Order) string {
	var b strings.Builder

	b.WriteString("*Pedido de almoço*\n")
	if o.CustomerName != "" {
		fmt.Fprintf(&b, "Nome: %s\n", o.CustomerName)
	}
	b.WriteString("\n")

	var total float64
	for _, item := range o.Items {
		fmt.Fprintf(&b, "%dx %s — R$ %.2f\n", item.Quantity, item.Name, item.Price*float64(item.Quantity))
		total += item.Price * float64(item.Quantity)
	}

	fmt.Fprintf(&b, "\n*Total: R$ %.2f*", total)

	if o.Note != "" {
		fmt.Fprintf(&b, "\nObs: %s", o.Note)
	}

	return b.String()
}

// BuildOrderLink gera o deep-link wa.me com a mensagem do pedido.
// phone deve estar em E.164 sem o "+" (ex.: 5511999999999).
func BuildOrderLink(phone string, o Order) (string, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	if digits == "" {
		return "", fmt.Errorf("whatsapp number not configured")
	}
	if len(o.Items) == 0 {
		return "", fmt.Errorf("empty order")
	}

	msg := BuildOrderMessage(o)
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, url.QueryEscape(msg)), nil
}
