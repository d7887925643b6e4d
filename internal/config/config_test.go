package config

import "testing"

// TestLoad_MissingFile 配置文件不存在时，重复调用 Load 都应返回错误，
// 而不是第二次悄悄返回 (nil, nil)
func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("testdata/no-such-config.yaml")
	if err == nil {
		t.Fatal("Load() error = nil, want error for missing file")
	}

	cfg, err := Load("testdata/no-such-config.yaml")
	if err == nil {
		t.Error("second Load() error = nil, want the sticky load error")
	}
	if cfg != nil {
		t.Errorf("second Load() config = %v, want nil", cfg)
	}
}
