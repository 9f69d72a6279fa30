package domain

import "time"

// Staff 值班人员，固定的小型值班池（六人），与后台登录用户是两套实体
type Staff struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	AvatarURL string    `json:"avatarURL"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}
