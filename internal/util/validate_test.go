package util

import "testing"

// TestValidateFundCode_Valid 测试合法基金代码
func TestValidateFundCode_Valid(t *testing.T) {
	testCases := []string{"000001", "161725", "999999"}

	for _, code := range testCases {
		if err := ValidateFundCode(code); err != nil {
			t.Errorf("ValidateFundCode(%q) error = %v, want nil", code, err)
		}
	}
}

// TestValidateFundCode_Invalid 测试非法基金代码（异常）
func TestValidateFundCode_Invalid(t *testing.T) {
	testCases := []string{
		"",
		"12345",    // 5 位
		"1234567",  // 7 位
		"12a456",   // 含字母
		"12 456",   // 含空格
		"１２３４５６",   // 全角数字
		"-12345",
	}

	for _, code := range testCases {
		if err := ValidateFundCode(code); err == nil {
			t.Errorf("ValidateFundCode(%q) error = nil, want error", code)
		}
	}
}
