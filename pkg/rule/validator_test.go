package rule_test

import (
	"testing"

	"github.com/yeisme/tunevault/pkg/rule"
)

// uploadPolicy 用于测试 ValidateStruct.
type uploadPolicy struct {
	BaseURL    string `rule:"required,url"`
	MaxSizeMiB int64  `rule:"min=1"`
}

// TestEngine 测试 Engine 函数返回非 nil 实例.
func TestEngine(t *testing.T) {
	engine := rule.Engine()
	if engine == nil {
		t.Error("Engine() returned nil")
	}
}

// TestValidateStruct 测试 ValidateStruct 对有效和无效结构体的验证.
func TestValidateStruct(t *testing.T) {
	// 有效配置
	valid := uploadPolicy{BaseURL: "http://localhost:8080", MaxSizeMiB: 50}

	err := rule.ValidateStruct(valid)
	if err != nil {
		t.Errorf("Expected no error for valid struct, got %v", err)
	}

	// 无效配置：BaseURL 不是 URL
	invalid1 := uploadPolicy{BaseURL: "not-a-url", MaxSizeMiB: 50}

	err = rule.ValidateStruct(invalid1)
	if err == nil {
		t.Error("Expected error for invalid struct (bad url), got nil")
	}

	// 无效配置：MaxSizeMiB 小于 1
	invalid2 := uploadPolicy{BaseURL: "http://localhost:8080", MaxSizeMiB: 0}

	err = rule.ValidateStruct(invalid2)
	if err == nil {
		t.Error("Expected error for invalid struct (max size < 1), got nil")
	}
}

// TestValidateVar 测试 ValidateVar 对变量的验证.
func TestValidateVar(t *testing.T) {
	// 有效 hostname_port
	err := rule.ValidateVar("localhost:9000", "hostname_port")
	if err != nil {
		t.Errorf("Expected no error for valid hostname:port, got %v", err)
	}

	// 无效 hostname_port
	err = rule.ValidateVar("localhost", "hostname_port")
	if err == nil {
		t.Error("Expected error for missing port, got nil")
	}

	// 有效数字
	err = rule.ValidateVar(60, "min=1,max=604800")
	if err != nil {
		t.Errorf("Expected no error for valid expiry, got %v", err)
	}

	// 无效数字
	err = rule.ValidateVar(0, "min=1,max=604800")
	if err == nil {
		t.Error("Expected error for zero expiry, got nil")
	}
}
