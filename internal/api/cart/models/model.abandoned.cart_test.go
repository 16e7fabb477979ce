package cartmodels

import (
	"testing"
)

func TestIsValidCartStatus(t *testing.T) {
	for _, status := range ValidCartStatuses {
		if !IsValidCartStatus(status) {
			t.Errorf("Trạng thái %q phải hợp lệ", status)
		}
	}

	invalid := []string{"", "pending", "Recovered", "ABANDONED", "done", "recovered "}
	for _, status := range invalid {
		if IsValidCartStatus(status) {
			t.Errorf("Trạng thái %q không được coi là hợp lệ", status)
		}
	}
}

func TestSummary(t *testing.T) {
	cart := AbandonedCart{
		Sale:    Sale{ID: 526, Amount: 297.5},
		Client:  Client{Email: "adrian.barton@greenholt.net"},
		Product: Product{Name: "Curso de Marketing"},
	}

	summary := cart.Summary()

	if summary["saleId"] != int64(526) {
		t.Errorf("saleId = %v, muốn 526", summary["saleId"])
	}
	if summary["clientEmail"] != "adrian.barton@greenholt.net" {
		t.Errorf("clientEmail = %v, muốn adrian.barton@greenholt.net", summary["clientEmail"])
	}
	if summary["productName"] != "Curso de Marketing" {
		t.Errorf("productName = %v, muốn Curso de Marketing", summary["productName"])
	}
	if summary["amount"] != 297.5 {
		t.Errorf("amount = %v, muốn 297.5", summary["amount"])
	}
	if _, ok := summary["id"]; !ok {
		t.Error("Summary thiếu key id")
	}
}
