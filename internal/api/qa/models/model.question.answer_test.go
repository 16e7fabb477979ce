package qamodels

import (
	"testing"
)

func TestIsValidQAStatus(t *testing.T) {
	for _, status := range ValidQAStatuses {
		if !IsValidQAStatus(status) {
			t.Errorf("Trạng thái %q phải hợp lệ", status)
		}
	}

	for _, status := range []string{"", "open", "Pending", "ANSWERED"} {
		if IsValidQAStatus(status) {
			t.Errorf("Trạng thái %q không được coi là hợp lệ", status)
		}
	}
}
