package domain

import (
	"time"
)

type Role string

const (
	RoleDutyStaff Role = "值班员"
	RoleAdmin     Role = "管理员"
)

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	// 密码以明文存储并明文比对，沿用旧系统的遗留行为（已知弱点，修复不在本期范围内）
	Password  string    `json:"-"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}
