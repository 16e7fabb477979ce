package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng.
// Các field required sẽ làm process fail fast ngay khi khởi động nếu thiếu.
type Configuration struct {
	Address               string `env:"PORT" envDefault:"8080"`                    // Port server lắng nghe
	MongoDB_ConnectionURI string `env:"MONGODB_URI,required"`                      // URL kết nối cơ sở dữ liệu (bắt buộc)
	MongoDB_DBName        string `env:"MONGODB_DBNAME" envDefault:"grenncovery"`   // Tên cơ sở dữ liệu
	JwtSecret             string `env:"JWT_SECRET,required"`                       // Bí mật JWT (bắt buộc)
	JwtExpiresInHours     int    `env:"JWT_EXPIRES_IN_HOURS" envDefault:"720"`     // Thời hạn token (giờ), mặc định 30 ngày
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX_REQUESTS" envDefault:"100"`  // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_WindowMs    int    `env:"RATE_LIMIT_WINDOW_MS" envDefault:"60000"`   // Thời gian window (mili giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting
	// Tài khoản admin mặc định (tạo khi collection users rỗng, bỏ qua nếu không cấu hình)
	AdminEmail    string `env:"ADMIN_EMAIL"`    // Email admin mặc định
	AdminPassword string `env:"ADMIN_PASSWORD"` // Mật khẩu admin mặc định
	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Bật HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Đường dẫn đến file certificate (.crt hoặc .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Đường dẫn đến file private key (.key)
}

// IsProduction cho biết server đang chạy ở môi trường production.
// Dùng để ẩn chi tiết lỗi 500 khỏi response trả về client.
func (c *Configuration) IsProduction() bool {
	return IsProduction()
}

// IsProduction là phiên bản hàm tự do, dùng được trước khi config được parse.
func IsProduction() bool {
	return os.Getenv("GO_ENV") == "production"
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Tìm thư mục config
	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			// Tìm thấy thư mục config/env
			envPath := filepath.Join(envDir, fmt.Sprintf("%s.env", env))
			return envPath
		}

		// Đi lên thư mục cha
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig đọc dữ liệu cấu hình từ file env (nếu có) rồi parse từ biến môi trường.
// File env không tồn tại không phải là lỗi: biến môi trường hệ thống vẫn được dùng.
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
			fmt.Printf("Không thể load file env tại %s: %v (dùng biến môi trường hệ thống)\n", envPath, err)
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
