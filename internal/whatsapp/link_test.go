package whatsapp

import (
	"net/url"
	"strings"
	"testing"
)

func sampleOrder() Order {
	return Order{
		CustomerName: "Carlos Mendes",
		Items: []OrderItem{
			{Name: "Feijoada completa", Quantity: 2, Price: 34.90},
			{Name: "Suco de laranja", Quantity: 1, Price: 8.00},
		},
		Note: "sem cebola",
	}
}

func TestBuildOrderMessage(t *testing.T) {
	msg := BuildOrderMessage(sampleOrder())

	for _, want := range []string{
		"Carlos Mendes",
		"2x Feijoada completa",
		"1x Suco de laranja",
		"R$ 77.80", // 2*34.90 + 8.00
		"sem cebola",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestBuildOrderLink(t *testing.T) {
	link, err := BuildOrderLink("+55 (11) 99999-0000", sampleOrder())
	if err != nil {
		t.Fatalf("BuildOrderLink() unexpected error: %v", err)
	}

	if !strings.HasPrefix(link, "https://wa.me/5511999990000?text=") {
		t.Errorf("link = %q, want wa.me prefix with digits only", link)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}

	text := u.Query().Get("text")
	if !strings.Contains(text, "Feijoada completa") {
		t.Errorf("decoded text missing item: %q", text)
	}
}

func TestBuildOrderLinkErrors(t *testing.T) {
	if _, err := BuildOrderLink("", sampleOrder()); err == nil {
		t.Error("empty phone: expected error")
	}

	if _, err := BuildOrderLink("5511999990000", Order{}); err == nil {
		t.Error("empty order: expected error")
	}
}
