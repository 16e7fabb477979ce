package utility

import (
	"fmt"
	"strconv"
	"strings"
)

// GetNestedValue lấy giá trị từ payload theo đường dẫn dấu chấm, vd: "sale.client.email".
// Trả về nil nếu bất kỳ đoạn nào của đường dẫn không tồn tại hoặc không phải object.
func GetNestedValue(data map[string]interface{}, path string) interface{} {
	if data == nil || path == "" {
		return nil
	}

	segments := strings.Split(path, ".")
	var current interface{} = data

	for _, segment := range segments {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return nil
		}
		value, exists := obj[segment]
		if !exists {
			return nil
		}
		current = value
	}

	return current
}

// FirstNestedValue duyệt các đường dẫn theo thứ tự ưu tiên, trả về giá trị
// khác nil đầu tiên tìm thấy.
func FirstNestedValue(data map[string]interface{}, paths ...string) interface{} {
	for _, path := range paths {
		if value := GetNestedValue(data, path); value != nil {
			return value
		}
	}
	return nil
}

// GetStringValue lấy giá trị string từ các đường dẫn ưu tiên.
// Số được chuyển thành string (JSON numbers decode thành float64).
// Trả về defaultValue nếu không tìm thấy giá trị nào khả dụng.
func GetStringValue(data map[string]interface{}, defaultValue string, paths ...string) string {
	value := FirstNestedValue(data, paths...)
	if value == nil {
		return defaultValue
	}

	switch v := value.(type) {
	case string:
		if v == "" {
			return defaultValue
		}
		return v
	case float64:
		// Số nguyên không có phần thập phân
		if v == float64(int64(v)) {
			return fmt.Sprintf("%.0f", v)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return defaultValue
	}
}

// GetFloatValue lấy giá trị số từ các đường dẫn ưu tiên.
// String chứa số được parse. Trả về defaultValue nếu không có giá trị khả dụng.
func GetFloatValue(data map[string]interface{}, defaultValue float64, paths ...string) float64 {
	value := FirstNestedValue(data, paths...)
	if value == nil {
		return defaultValue
	}

	switch v := value.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case string:
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
		return defaultValue
	default:
		return defaultValue
	}
}

// GetInt64Value lấy giá trị int64 từ các đường dẫn ưu tiên
func GetInt64Value(data map[string]interface{}, defaultValue int64, paths ...string) int64 {
	value := FirstNestedValue(data, paths...)
	if value == nil {
		return defaultValue
	}

	switch v := value.(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case string:
		if parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return parsed
		}
		return defaultValue
	default:
		return defaultValue
	}
}
