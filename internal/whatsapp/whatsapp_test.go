package whatsapp_test

import (
	"net/url"
	"strings"
	"testing"

	"yunix/internal/domain"
	"yunix/internal/whatsapp"
)

var gown = domain.Product{ID: 7, Name: "Champagne Dreams Wedding Gown", Price: 450000}

func decodeText(t *testing.T, link string) string {
	t.Helper()
	u, err := url.Parse(link)
	if err != nil {
		t.Fatal(err)
	}
	return u.Query().Get("text")
}

func TestOrderLink(t *testing.T) {
	wa := whatsapp.New("2348123456789")

	link := wa.OrderLink(gown, "M", "Ivory", 2)
	if !strings.HasPrefix(link, "https://wa.me/2348123456789?text=") {
		t.Fatalf("bad link prefix: %s", link)
	}
	msg := decodeText(t, link)
	want := "Hi! I'm interested in ordering the Champagne Dreams Wedding Gown (₦450,000) in size M in Ivory, quantity: 2. Please send me more details."
	if msg != want {
		t.Fatalf("order message:\nwant %q\ngot  %q", want, msg)
	}
}

func TestOrderLinkOmitsUnselectedOptions(t *testing.T) {
	wa := whatsapp.New("2348123456789")
	msg := decodeText(t, wa.OrderLink(gown, "", "", 0))
	want := "Hi! I'm interested in ordering the Champagne Dreams Wedding Gown (₦450,000), quantity: 1. Please send me more details."
	if msg != want {
		t.Fatalf("want %q, got %q", want, msg)
	}
}

func TestEnquiryLink(t *testing.T) {
	wa := whatsapp.New("2348123456789")
	msg := decodeText(t, wa.EnquiryLink(gown))
	if !strings.Contains(msg, `"Champagne Dreams Wedding Gown"`) || !strings.Contains(msg, "₦450,000") {
		t.Fatalf("enquiry message missing product details: %q", msg)
	}
}

func TestContactLink(t *testing.T) {
	wa := whatsapp.New("2348123456789")
	msg := decodeText(t, wa.ContactLink())
	if !strings.Contains(msg, "custom fashion designs") {
		t.Fatalf("unexpected contact message: %q", msg)
	}
}
