package domain

import "time"

// User is a customer account created through the signup form.
// Password is stored and compared as plaintext, matching the legacy
// credential contract. Email is unique.
type User struct {
	ID          int64  `gorm:"primaryKey" json:"id,string" form:"id"`
	Name        string `json:"name" form:"name"`
	Dob         string `json:"dob" form:"dob"`
	Password    string `json:"password" form:"password"`
	Email       string `gorm:"uniqueIndex" json:"email" form:"email"`
	PhoneNumber string `json:"phoneNumber" form:"phoneNumber"`
	Location    string `json:"location" form:"location"`
}

// TableName Specify table name
func (User) TableName() string {
	return "user"
}

// FUser is a farmer account. It carries the uploaded profile image
// filename; the file itself lives in the image store.
type FUser struct {
	ID          int64  `gorm:"primaryKey" json:"id,string" form:"id"`
	Name        string `json:"name" form:"name"`
	Dob         string `json:"dob" form:"dob"`
	Email       string `gorm:"index" json:"email" form:"email"`
	PhoneNumber string `json:"phoneNumber" form:"phoneNumber"`
	Password    string `json:"password" form:"password"`
	Location    string `json:"location" form:"location"`
	Image       string `gorm:"size:1024" json:"image" form:"image"`
}

// TableName Specify table name
func (FUser) TableName() string {
	return "fuser"
}

// CustomerUser is the bare credential record captured on customer login.
type CustomerUser struct {
	ID       int64  `gorm:"primaryKey" json:"id,string" form:"id"`
	Email    string `gorm:"uniqueIndex" json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// TableName Specify table name
func (CustomerUser) TableName() string {
	return "customer_user"
}

type SysConfig struct {
	ID        int64     `gorm:"primaryKey" json:"id,string" form:"id"`
	Sort      int       `json:"sort" form:"sort"`
	Type      string    `gorm:"index" json:"type" form:"type"`
	Name      string    `gorm:"index" json:"name" form:"name"`
	Value     string    `json:"value" form:"value"`
	Remark    string    `json:"remark" form:"remark"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName Specify table name
func (SysConfig) TableName() string {
	return "sys_config"
}
