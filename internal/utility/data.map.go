package utility

import (
	"encoding/json"
)

// ToMap chuyển đổi một struct thành map[string]interface{} thông qua JSON round-trip,
// tôn trọng các json tags của struct.
func ToMap(data interface{}) (map[string]interface{}, error) {
	bytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var result map[string]interface{}
	if err := json.Unmarshal(bytes, &result); err != nil {
		return nil, err
	}

	return result, nil
}
