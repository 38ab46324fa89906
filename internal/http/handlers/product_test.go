package handlers_test

import (
	"strings"
	"testing"
)

func TestProductDetail(t *testing.T) {
	app := newTestApp(t)

	status, s := get(t, app, "/product/7")
	if status != 200 {
		t.Fatalf("want 200, got %d", status)
	}
	if !strings.Contains(s, "Champagne Dreams Wedding Gown") {
		t.Fatal("detail page missing product name")
	}
	if !strings.Contains(s, "₦450,000") {
		t.Fatal("detail page missing formatted price")
	}
	if !strings.Contains(s, "https://wa.me/2348123456789?text=") {
		t.Fatal("detail page missing WhatsApp order link")
	}
}

func TestProductDetailSelectionFeedsOrderLink(t *testing.T) {
	app := newTestApp(t)

	_, s := get(t, app, "/product/7?size=M&color=Ivory&qty=2")
	if !strings.Contains(s, "in+size+M") || !strings.Contains(s, "in+Ivory") {
		t.Fatal("order link should carry the selected size and color")
	}

	// A size the product does not offer is dropped, not echoed.
	_, s = get(t, app, "/product/7?size=XXXL")
	if strings.Contains(s, "XXXL") {
		t.Fatal("unknown size must not reach the page")
	}
}

func TestProductNotFound(t *testing.T) {
	app := newTestApp(t)

	for _, target := range []string{"/product/999", "/product/abc", "/product/-1"} {
		status, s := get(t, app, target)
		if status != 404 {
			t.Fatalf("%s: want 404, got %d", target, status)
		}
		if !strings.Contains(s, "no longer available") {
			t.Fatalf("%s: missing friendly message", target)
		}
	}
}

func TestHomeShowsFeaturedAndCategories(t *testing.T) {
	app := newTestApp(t)

	status, s := get(t, app, "/")
	if status != 200 {
		t.Fatalf("want 200, got %d", status)
	}
	// Featured order puts the bestsellers first.
	if !strings.Contains(s, "Royal Blue Bubu") || !strings.Contains(s, "Champagne Dreams Wedding Gown") {
		t.Fatal("home should showcase the bestsellers")
	}
	if !strings.Contains(s, "Asoebi Wears") {
		t.Fatal("home should list categories")
	}
}
