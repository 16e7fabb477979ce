package utility

import (
	"testing"
	"time"
)

func TestCreateAndParseToken(t *testing.T) {
	secret := "test-secret"
	userID := "64b000000000000000000001"

	token, err := CreateToken(secret, userID, 720)
	if err != nil {
		t.Fatalf("CreateToken lỗi: %v", err)
	}
	if token == "" {
		t.Fatal("CreateToken trả về token rỗng")
	}

	claims, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("ParseToken lỗi: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %q, muốn %q", claims.UserID, userID)
	}

	// Thời hạn phải xấp xỉ 720 giờ (30 ngày) kể từ bây giờ
	wantExpiry := time.Now().Add(720 * time.Hour).Unix()
	if diff := claims.ExpiresAt - wantExpiry; diff < -60 || diff > 60 {
		t.Errorf("ExpiresAt lệch %d giây so với 720 giờ", diff)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := CreateToken("secret-a", "user1", 1)
	if err != nil {
		t.Fatalf("CreateToken lỗi: %v", err)
	}

	if _, err := ParseToken("secret-b", token); err == nil {
		t.Error("ParseToken với secret sai phải trả về lỗi")
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := ParseToken("secret", "không-phải-jwt"); err == nil {
		t.Error("ParseToken với chuỗi rác phải trả về lỗi")
	}
}

func TestCreateToken_DefaultExpiry(t *testing.T) {
	// expiresInHours <= 0 phải rơi về mặc định 720 giờ
	token, err := CreateToken("secret", "user1", 0)
	if err != nil {
		t.Fatalf("CreateToken lỗi: %v", err)
	}

	claims, err := ParseToken("secret", token)
	if err != nil {
		t.Fatalf("ParseToken lỗi: %v", err)
	}

	wantExpiry := time.Now().Add(720 * time.Hour).Unix()
	if diff := claims.ExpiresAt - wantExpiry; diff < -60 || diff > 60 {
		t.Errorf("ExpiresAt lệch %d giây so với mặc định 720 giờ", diff)
	}
}
