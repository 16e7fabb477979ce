package utility

import (
	"regexp"
	"time"
)

// CurrentTimeInMilli trả về thời gian hiện tại tính bằng milliseconds (Unix epoch)
func CurrentTimeInMilli() int64 {
	return time.Now().UnixMilli()
}

// UnixMilliToTime chuyển đổi Unix milliseconds thành time.Time
func UnixMilliToTime(milli int64) time.Time {
	return time.UnixMilli(milli)
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail kiểm tra định dạng email
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidatePassword kiểm tra độ mạnh tối thiểu của mật khẩu (ít nhất 6 ký tự)
func ValidatePassword(password string) bool {
	return len(password) >= 6
}
