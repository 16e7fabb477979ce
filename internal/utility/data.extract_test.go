package utility

import (
	"testing"
)

func TestGetNestedValue(t *testing.T) {
	data := map[string]interface{}{
		"sale": map[string]interface{}{
			"client": map[string]interface{}{
				"email": "a@b.com",
			},
			"amount": float64(10),
		},
	}

	if v := GetNestedValue(data, "sale.client.email"); v != "a@b.com" {
		t.Errorf("GetNestedValue(sale.client.email) = %v, muốn a@b.com", v)
	}
	if v := GetNestedValue(data, "sale.amount"); v != float64(10) {
		t.Errorf("GetNestedValue(sale.amount) = %v, muốn 10", v)
	}
	if v := GetNestedValue(data, "sale.missing"); v != nil {
		t.Errorf("GetNestedValue(sale.missing) = %v, muốn nil", v)
	}
	if v := GetNestedValue(data, "sale.amount.deeper"); v != nil {
		t.Errorf("GetNestedValue qua scalar phải trả về nil, nhận %v", v)
	}
	if v := GetNestedValue(nil, "sale"); v != nil {
		t.Errorf("GetNestedValue trên map nil phải trả về nil, nhận %v", v)
	}
}

func TestFirstNestedValue_Priority(t *testing.T) {
	data := map[string]interface{}{
		"order": map[string]interface{}{"id": float64(2)},
		"sale":  map[string]interface{}{"id": float64(1)},
	}

	v := FirstNestedValue(data, "sale.id", "order.id")
	if v != float64(1) {
		t.Errorf("FirstNestedValue = %v, muốn 1 (đường dẫn đứng trước thắng)", v)
	}

	v = FirstNestedValue(data, "missing.id", "order.id")
	if v != float64(2) {
		t.Errorf("FirstNestedValue = %v, muốn fallback sang order.id = 2", v)
	}
}

func TestGetStringValue(t *testing.T) {
	data := map[string]interface{}{
		"name":  "Adrian",
		"empty": "",
		"id":    float64(526),
		"rate":  float64(1.5),
		"flag":  true,
	}

	if v := GetStringValue(data, "default", "name"); v != "Adrian" {
		t.Errorf("GetStringValue(name) = %q, muốn Adrian", v)
	}
	if v := GetStringValue(data, "default", "missing"); v != "default" {
		t.Errorf("GetStringValue(missing) = %q, muốn default", v)
	}
	if v := GetStringValue(data, "default", "empty"); v != "default" {
		t.Errorf("GetStringValue với string rỗng phải trả về default, nhận %q", v)
	}
	if v := GetStringValue(data, "", "id"); v != "526" {
		t.Errorf("GetStringValue(id) = %q, muốn 526 (số nguyên không có .0)", v)
	}
	if v := GetStringValue(data, "", "rate"); v != "1.5" {
		t.Errorf("GetStringValue(rate) = %q, muốn 1.5", v)
	}
	if v := GetStringValue(data, "", "flag"); v != "true" {
		t.Errorf("GetStringValue(flag) = %q, muốn true", v)
	}
}

func TestGetInt64Value(t *testing.T) {
	data := map[string]interface{}{
		"id":     float64(526),
		"strId":  "99",
		"badStr": "abc",
	}

	if v := GetInt64Value(data, 0, "id"); v != 526 {
		t.Errorf("GetInt64Value(id) = %d, muốn 526", v)
	}
	if v := GetInt64Value(data, 0, "strId"); v != 99 {
		t.Errorf("GetInt64Value(strId) = %d, muốn 99", v)
	}
	if v := GetInt64Value(data, 7, "badStr"); v != 7 {
		t.Errorf("GetInt64Value(badStr) = %d, muốn default 7", v)
	}
	if v := GetInt64Value(data, 7, "missing"); v != 7 {
		t.Errorf("GetInt64Value(missing) = %d, muốn default 7", v)
	}
}

func TestGetFloatValue(t *testing.T) {
	data := map[string]interface{}{
		"amount": float64(297.5),
		"strAmt": "10.25",
	}

	if v := GetFloatValue(data, 0, "amount"); v != 297.5 {
		t.Errorf("GetFloatValue(amount) = %v, muốn 297.5", v)
	}
	if v := GetFloatValue(data, 0, "strAmt"); v != 10.25 {
		t.Errorf("GetFloatValue(strAmt) = %v, muốn 10.25", v)
	}
	if v := GetFloatValue(data, 3.5, "missing"); v != 3.5 {
		t.Errorf("GetFloatValue(missing) = %v, muốn default 3.5", v)
	}
}
