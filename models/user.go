package models

// User rows are provisioned out-of-band; the API only ever reads them
// during sign-in. The pass column holds a bcrypt hash.
type User struct {
	UserID   uint   `gorm:"column:user_id;primaryKey" json:"user_id"`
	EmailID  string `gorm:"column:email_id;uniqueIndex" json:"email_id"`
	Password string `gorm:"column:pass" json:"-"`
}

func (User) TableName() string { return "users" }
