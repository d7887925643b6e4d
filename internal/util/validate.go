package util

import "fmt"

// ValidateFundCode 验证基金代码（必须为 6 位 ASCII 数字）
func ValidateFundCode(code string) error {
	if len(code) != 6 {
		return fmt.Errorf("fund code must be 6 digits, got %q", code)
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return fmt.Errorf("fund code must be 6 digits, got %q", code)
		}
	}
	return nil
}
