package basehdl

import (
	"errors"
	"strings"
	"testing"

	"github.com/douglasrochagreenn/grenncovery-sub000/internal/global"
)

type statusInput struct {
	CartStatus string `json:"cart_status" validate:"required,cart_status"`
	Email      string `json:"email" validate:"omitempty,email"`
	Note       string `json:"note" validate:"omitempty,max=5"`
}

func TestFormatValidationErrors(t *testing.T) {
	global.InitValidator()

	// Thiếu field bắt buộc, email sai định dạng, note quá dài
	err := global.Validate.Struct(&statusInput{
		Email: "không-phải-email",
		Note:  "dài quá năm ký tự",
	})
	if err == nil {
		t.Fatal("Validate phải trả về lỗi")
	}

	details := FormatValidationErrors(err)

	if _, ok := details["CartStatus"]; !ok {
		t.Errorf("Thiếu thông báo lỗi cho CartStatus, có: %v", details)
	}
	if _, ok := details["Email"]; !ok {
		t.Errorf("Thiếu thông báo lỗi cho Email, có: %v", details)
	}
	if _, ok := details["Note"]; !ok {
		t.Errorf("Thiếu thông báo lỗi cho Note, có: %v", details)
	}
}

func TestFormatValidationErrors_CartStatusTag(t *testing.T) {
	global.InitValidator()

	err := global.Validate.Struct(&statusInput{CartStatus: "done"})
	if err == nil {
		t.Fatal("Trạng thái 'done' phải bị reject")
	}

	details := FormatValidationErrors(err)
	msg, ok := details["CartStatus"]
	if !ok {
		t.Fatalf("Thiếu thông báo lỗi cho CartStatus, có: %v", details)
	}
	// Thông báo phải liệt kê các trạng thái hợp lệ cho client
	for _, want := range []string{"abandoned", "recovered", "cancelled"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Thông báo %q thiếu trạng thái hợp lệ %q", msg, want)
		}
	}
}

func TestFormatValidationErrors_NonValidationError(t *testing.T) {
	details := FormatValidationErrors(errors.New("lỗi bất kỳ"))
	if details["_error"] == "" {
		t.Errorf("Lỗi không phải ValidationErrors phải trả về key _error, có: %v", details)
	}
}
