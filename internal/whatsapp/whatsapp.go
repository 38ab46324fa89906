// Package whatsapp builds the wa.me deep links used instead of a checkout
// pipeline. Link construction is the whole integration: opening the chat is
// the visitor's browser's job.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"yunix/internal/domain"
	"yunix/internal/money"
)

type Linker struct {
	Number string // international format without '+', e.g. 2348123456789
}

func New(number string) *Linker { return &Linker{Number: number} }

func (l *Linker) link(message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", l.Number, url.QueryEscape(message))
}

// OrderLink pre-fills an order enquiry for one product. Size and color are
// optional; qty below 1 is treated as 1.
func (l *Linker) OrderLink(p domain.Product, size, color string, qty int) string {
	if qty < 1 {
		qty = 1
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Hi! I'm interested in ordering the %s (%s)", p.Name, money.Naira(p.Price))
	if size != "" {
		fmt.Fprintf(&b, " in size %s", size)
	}
	if color != "" {
		fmt.Fprintf(&b, " in %s", color)
	}
	fmt.Fprintf(&b, ", quantity: %d. Please send me more details.", qty)
	return l.link(b.String())
}

// EnquiryLink pre-fills a short sizing/delivery question from a product card.
func (l *Linker) EnquiryLink(p domain.Product) string {
	msg := fmt.Sprintf("Hi! I'm interested in the %q priced at %s. Could you provide more details about sizing and delivery?",
		p.Name, money.Naira(p.Price))
	return l.link(msg)
}

// ContactLink pre-fills the general contact message used on the home and
// contact pages.
func (l *Linker) ContactLink() string {
	return l.link("Hello! I'd like to know more about your custom fashion designs.")
}
