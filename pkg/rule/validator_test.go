package rule_test

import (
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/yeisme/filedrive/pkg/rule"
)

// createFileInput 模拟文件创建入参的校验结构.
type createFileInput struct {
	Name string `rule:"required"`
	Type string `rule:"required,oneof=image pdf csv"`
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
	// 有效结构体
	valid := createFileInput{Name: "budget.csv", Type: "csv"}

	err := rule.ValidateStruct(valid)
	if err != nil {
		t.Errorf("Expected no error for valid struct, got %v", err)
	}

	// 无效结构体：缺少 Name
	missingName := createFileInput{Name: "", Type: "pdf"}

	err = rule.ValidateStruct(missingName)
	if err == nil {
		t.Error("Expected error for invalid struct (missing name), got nil")
	}

	// 无效结构体：类型不在封闭集合内
	badType := createFileInput{Name: "notes.txt", Type: "txt"}

	err = rule.ValidateStruct(badType)
	if err == nil {
		t.Error("Expected error for invalid struct (type not in set), got nil")
	}
}

// TestValidateVar 测试 ValidateVar 对变量的验证.
func TestValidateVar(t *testing.T) {
	// 有效 email
	err := rule.ValidateVar("test@example.com", "required,email")
	if err != nil {
		t.Errorf("Expected no error for valid email, got %v", err)
	}

	// 无效 email
	err = rule.ValidateVar("invalid-email", "required,email")
	if err == nil {
		t.Error("Expected error for invalid email, got nil")
	}

	// 封闭集合校验
	err = rule.ValidateVar("image", "oneof=image pdf csv")
	if err != nil {
		t.Errorf("Expected no error for valid file type, got %v", err)
	}

	err = rule.ValidateVar("exe", "oneof=image pdf csv")
	if err == nil {
		t.Error("Expected error for file type outside the closed set, got nil")
	}
}

// TestRegisterValidation 测试注册自定义验证.
func TestRegisterValidation(t *testing.T) {
	// 注册自定义验证：检查作用域标识非空白
	err := rule.RegisterValidation("scope_id", func(fl validator.FieldLevel) bool {
		s, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}

		return len(s) > 0 && s[0] != ' '
	})
	if err != nil {
		t.Fatalf("Failed to register validation: %v", err)
	}

	if err = rule.ValidateVar("org_123", "scope_id"); err != nil {
		t.Errorf("Expected no error for valid scope id, got %v", err)
	}

	if err = rule.ValidateVar("", "scope_id"); err == nil {
		t.Error("Expected error for empty scope id, got nil")
	}
}

// TestRegisterAlias 测试注册别名.
func TestRegisterAlias(t *testing.T) {
	rule.RegisterAlias("file_name", "required,min=1")

	if err := rule.ValidateVar("a.png", "file_name"); err != nil {
		t.Errorf("Expected no error for valid string with alias, got %v", err)
	}

	if err := rule.ValidateVar("", "file_name"); err == nil {
		t.Error("Expected error for invalid string with alias, got nil")
	}
}
