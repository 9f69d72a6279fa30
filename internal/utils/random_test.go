package utils

import (
	"testing"
	"unicode"
)

func TestGenerateRandomOTP(t *testing.T) {
	for i := 0; i < 100; i++ {
		otp := GenerateRandomOTP()
		if len(otp) != 6 {
			t.Fatalf("验证码长度期望=6，实际=%d（%s）", len(otp), otp)
		}
		for _, c := range otp {
			if !unicode.IsDigit(c) {
				t.Fatalf("验证码应只包含数字，实际=%s", otp)
			}
		}
	}
}

func TestGenerateRandomPassword(t *testing.T) {
	password := GenerateRandomPassword(12)
	if len(password) != 12 {
		t.Errorf("密码长度期望=12，实际=%d", len(password))
	}
}

func TestGenerateRandomPhone(t *testing.T) {
	phone := GenerateRandomPhone()
	if len(phone) != 11 {
		t.Fatalf("手机号长度期望=11，实际=%d（%s）", len(phone), phone)
	}
	if phone[0] != '1' {
		t.Errorf("手机号应以 1 开头，实际=%s", phone)
	}
}

func TestGenerateUsernameFromChineseName(t *testing.T) {
	username := GenerateUsernameFromChineseName("陈志强")
	if username == "" {
		t.Fatal("用户名不应为空")
	}
	for _, c := range username {
		if c > unicode.MaxASCII {
			t.Fatalf("用户名应为纯 ASCII，实际=%s", username)
		}
	}
}

func TestGenerateRandomUser(t *testing.T) {
	user := GenerateRandomUser("test-password", "example.com")
	if user.Password != "test-password" {
		t.Errorf("密码应原样入库，实际=%s", user.Password)
	}
	if user.Email != user.Username+"@example.com" {
		t.Errorf("邮箱应由用户名和域名拼接，实际=%s", user.Email)
	}
}
