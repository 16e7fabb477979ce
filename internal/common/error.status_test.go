package common

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertMongoError_Nil(t *testing.T) {
	if err := ConvertMongoError(nil); err != nil {
		t.Errorf("ConvertMongoError(nil) = %v, muốn nil", err)
	}
}

func TestConvertMongoError_DuplicateKey(t *testing.T) {
	// Lỗi duplicate key (code 11000) từ unique index phải map sang ErrMongoDuplicate,
	// đây là tín hiệu "đã tồn tại" cho dedup theo sale.id
	writeErr := mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}},
	}

	converted := ConvertMongoError(writeErr)
	if !errors.Is(converted, ErrMongoDuplicate) {
		t.Errorf("Lỗi duplicate key phải map sang ErrMongoDuplicate, nhận %v", converted)
	}

	var customErr *Error
	if !errors.As(converted, &customErr) {
		t.Fatal("Lỗi convert phải là *common.Error")
	}
	if customErr.StatusCode != StatusConflict {
		t.Errorf("StatusCode = %d, muốn %d (Conflict)", customErr.StatusCode, StatusConflict)
	}
}

func TestConvertMongoError_NotFoundPassthrough(t *testing.T) {
	converted := ConvertMongoError(ErrNotFound)
	if !errors.Is(converted, ErrNotFound) {
		t.Errorf("ErrNotFound phải được giữ nguyên, nhận %v", converted)
	}
}

func TestConvertMongoError_UnknownError(t *testing.T) {
	converted := ConvertMongoError(errors.New("lỗi lạ"))

	var customErr *Error
	if !errors.As(converted, &customErr) {
		t.Fatal("Lỗi lạ phải được bọc thành *common.Error")
	}
	if customErr.StatusCode != StatusInternalServerError {
		t.Errorf("StatusCode = %d, muốn %d", customErr.StatusCode, StatusInternalServerError)
	}
}

func TestErrorIs(t *testing.T) {
	if !errors.Is(ErrMongoDuplicate, ErrMongoDuplicate) {
		t.Error("errors.Is phải nhận ra chính nó")
	}
	if errors.Is(ErrMongoDuplicate, ErrNotFound) {
		t.Error("errors.Is không được nhầm hai lỗi khác nhau")
	}
}
