package route

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		path string
		want Route
	}{
		{"/", Route{Kind: KindHome}},
		{"", Route{Kind: KindHome}},
		{"/unknown/path", Route{Kind: KindHome}},
		{"/product/p1", Route{Kind: KindProductDetail, ID: "p1", HasID: true}},
		{"/order/p2", Route{Kind: KindOrderForm, ID: "p2", HasID: true}},
		{"/order/success/ORD-123", Route{Kind: KindOrderSuccess, ID: "ORD-123", HasID: true}},
		{"/admin", Route{Kind: KindAdminDashboard}},
		{"/admin/anything-else", Route{Kind: KindAdminDashboard}},
		{"/admin/orders", Route{Kind: KindAdminOrders}},
		{"/admin/add", Route{Kind: KindAdminProductForm}},
		{"/admin/edit/p3", Route{Kind: KindAdminProductForm, ID: "p3", HasID: true}},
		{"/admin/reports", Route{Kind: KindAdminReports}},
		{"admin/orders", Route{Kind: KindAdminOrders}},
	}

	for _, tt := range tests {
		got := Parse(tt.path)
		if got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.path, got, tt.want)
		}
	}
}

func TestParseAdminOrdersDoesNotFallThrough(t *testing.T) {
	// The exact admin matches must win over the dashboard catch-all.
	if got := Parse("/admin/orders"); got.Kind == KindAdminDashboard {
		t.Fatalf("/admin/orders resolved to the dashboard")
	}
	if got := Parse("/order/success/x"); got.Kind == KindOrderForm {
		t.Fatalf("/order/success/x resolved to the order form")
	}
}

func TestConfirmationPath(t *testing.T) {
	path := ConfirmationPath("ORD-123")
	if path != "/order/success/ORD-123" {
		t.Fatalf("unexpected confirmation path %q", path)
	}
	if got := Parse(path); got.Kind != KindOrderSuccess || got.ID != "ORD-123" {
		t.Fatalf("confirmation path does not round-trip: %+v", got)
	}
}
