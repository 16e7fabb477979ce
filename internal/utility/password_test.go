package utility

import (
	"testing"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("mat-khau-123")
	if err != nil {
		t.Fatalf("HashPassword lỗi: %v", err)
	}
	if hash == "mat-khau-123" {
		t.Fatal("Hash không được trùng với mật khẩu gốc")
	}

	if err := ComparePassword(hash, "mat-khau-123"); err != nil {
		t.Errorf("ComparePassword với mật khẩu đúng phải thành công: %v", err)
	}
	if err := ComparePassword(hash, "mat-khau-sai"); err == nil {
		t.Error("ComparePassword với mật khẩu sai phải trả về lỗi")
	}
}
