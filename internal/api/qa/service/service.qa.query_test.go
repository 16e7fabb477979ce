package qasvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	qadto "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/qa/dto"
)

func TestBuildListFilter_Empty(t *testing.T) {
	filter := BuildListFilter(qadto.QAListQuery{})
	assert.Equal(t, bson.M{}, filter, "Query rỗng phải trả về filter rỗng")
}

func TestBuildListFilter_ExactFields(t *testing.T) {
	filter := BuildListFilter(qadto.QAListQuery{
		Status:      "pending",
		Priority:    "high",
		Category:    "payment",
		ClientEmail: "adrian.barton@greenholt.net",
	})

	assert.Equal(t, "pending", filter["status"], "Status phải khớp chính xác")
	assert.Equal(t, "high", filter["priority"], "Priority phải khớp chính xác")
	assert.Equal(t, "payment", filter["category"], "Category phải khớp chính xác")
	assert.Equal(t, "adrian.barton@greenholt.net", filter["clientEmail"], "ClientEmail phải khớp chính xác")
}

func TestBuildListFilter_IsPublic(t *testing.T) {
	filter := BuildListFilter(qadto.QAListQuery{IsPublic: "true"})
	assert.Equal(t, true, filter["isPublic"], "isPublic=true phải thành bool true")

	filter = BuildListFilter(qadto.QAListQuery{IsPublic: "false"})
	assert.Equal(t, false, filter["isPublic"], "isPublic=false phải thành bool false")

	filter = BuildListFilter(qadto.QAListQuery{IsPublic: "yes"})
	_, ok := filter["isPublic"]
	assert.False(t, ok, "Giá trị isPublic không hợp lệ phải bị bỏ qua")
}
