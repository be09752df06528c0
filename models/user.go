package models

// User is a registered account. Rows are created at signup and never
// mutated or deleted afterwards.
type User struct {
	ID           uint   `gorm:"column:user_id;primaryKey" json:"id"`
	Username     string `gorm:"unique;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
}

func (User) TableName() string {
	return "users"
}
