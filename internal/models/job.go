package models

import "time"

// RemoteCategory is the job category that makes the SKU mandatory.
const RemoteCategory = "remote"

type Job struct {
	ID        uint      `gorm:"column:job_id;primaryKey;autoIncrement" json:"job_id"`
	Name      string    `gorm:"column:job_name;size:50;not null" json:"job_name"`
	SKU       *string   `gorm:"column:job_sku;size:20;uniqueIndex:unique_job_sku" json:"job_sku"`
	Category  string    `gorm:"column:job_category;size:50;not null" json:"job_category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Assignments []EmployeeJob `gorm:"foreignKey:JobID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Job) TableName() string {
	return "job"
}
