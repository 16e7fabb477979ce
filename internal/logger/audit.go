package logger

import (
	"github.com/sirupsen/logrus"
)

// LogAuth ghi audit log cho các sự kiện xác thực (login, register, verify)
func LogAuth(event string, email string, success bool, details logrus.Fields) {
	entry := GetAuditLogger().WithFields(logrus.Fields{
		"audit_type": "auth",
		"event":      event,
		"email":      email,
		"success":    success,
	})
	if details != nil {
		entry = entry.WithFields(details)
	}
	if success {
		entry.Info("Auth event")
	} else {
		entry.Warn("Auth event failed")
	}
}

// LogStatusChange ghi audit log cho việc chuyển trạng thái giỏ hàng
func LogStatusChange(cartID string, saleID int64, oldStatus, newStatus, actor string) {
	GetAuditLogger().WithFields(logrus.Fields{
		"audit_type": "cart_status",
		"cart_id":    cartID,
		"sale_id":    saleID,
		"old_status": oldStatus,
		"new_status": newStatus,
		"updated_by": actor,
	}).Info("Cart status changed")
}
