package models

import "time"

// CustomerAuth holds the hashes of the tokens currently issued to a customer.
// Refresh and reset tokens are kept in separate columns with their own expiry.
type CustomerAuth struct {
	ID               uint       `gorm:"column:cus_auth_id;primaryKey;autoIncrement" json:"cus_auth_id"`
	CusID            uint       `gorm:"column:cus_id;not null;uniqueIndex" json:"cus_id"`
	AccessTokenHash  string     `gorm:"column:cus_auth_token;size:64" json:"-"`
	RefreshTokenHash *string    `gorm:"column:cus_refresh_auth_token;size:64;uniqueIndex" json:"-"`
	ResetTokenHash   *string    `gorm:"column:reset_password_token;size:64;uniqueIndex" json:"-"`
	ResetExpiresAt   *time.Time `gorm:"column:reset_password_expires" json:"-"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (CustomerAuth) TableName() string {
	return "customer_auth"
}
