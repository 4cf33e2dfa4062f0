package model

// swagger:model User
type User struct {
	UUIDBase
	Name     string `gorm:"size:100;not null" json:"username"`
	Email    string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:100;not null" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// PublicUser 对外暴露的用户信息，不含密码哈希
// swagger:model PublicUser
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Name,
		Email:    u.Email,
	}
}
