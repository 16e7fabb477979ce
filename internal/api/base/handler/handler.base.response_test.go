package basehdl

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/douglasrochagreenn/grenncovery-sub000/internal/common"
)

// gọi HandleResponse với một lỗi không phải *common.Error và trả về body đã decode
func responseForUnknownError(t *testing.T) map[string]interface{} {
	t.Helper()

	app := fiber.New()
	app.Get("/loi", func(c fiber.Ctx) error {
		HandleResponse(c, nil, errors.New("chi tiết lỗi nội bộ"))
		return nil
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/loi", nil))
	if err != nil {
		t.Fatalf("Request thử nghiệm lỗi: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != common.StatusInternalServerError {
		t.Errorf("Status code = %d, muốn %d", resp.StatusCode, common.StatusInternalServerError)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Không decode được response body: %v", err)
	}
	return body
}

func TestHandleResponse_UnknownErrorVisibleInDevelopment(t *testing.T) {
	t.Setenv("GO_ENV", "development")

	body := responseForUnknownError(t)
	if body["message"] != "chi tiết lỗi nội bộ" {
		t.Errorf("message = %v, môi trường development phải trả về chi tiết lỗi", body["message"])
	}
}

func TestHandleResponse_UnknownErrorMaskedInProduction(t *testing.T) {
	t.Setenv("GO_ENV", "production")

	body := responseForUnknownError(t)
	if body["message"] != common.MsgInternalError {
		t.Errorf("message = %v, môi trường production phải che chi tiết lỗi", body["message"])
	}
	if body["message"] == "chi tiết lỗi nội bộ" {
		t.Error("Chi tiết lỗi nội bộ không được lộ ra client khi chạy production")
	}
}
