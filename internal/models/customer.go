package models

import "time"

// Customer statuses.
const (
	CustomerActive     = "active"
	CustomerInactive   = "inactive"
	CustomerRestricted = "restricted"
	CustomerBlocked    = "blocked"
)

var CustomerStatuses = []string{CustomerActive, CustomerInactive, CustomerRestricted, CustomerBlocked}

type Customer struct {
	ID          uint      `gorm:"column:cus_id;primaryKey;autoIncrement" json:"cus_id"`
	FirstName   string    `gorm:"column:cus_firstname;size:50;not null" json:"cus_firstname"`
	LastName    string    `gorm:"column:cus_lastname;size:50;not null" json:"cus_lastname"`
	Email       string    `gorm:"column:cus_email;size:255;not null;uniqueIndex:unique_cus_email" json:"cus_email"`
	PhoneNumber string    `gorm:"column:cus_phone_number;size:20;not null;uniqueIndex:unique_cus_phone_number" json:"cus_phone_number"`
	Password    string    `gorm:"column:cus_password;not null" json:"-"`
	Status      string    `gorm:"column:cus_status;size:20;not null;default:'active'" json:"cus_status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Auth                *CustomerAuth      `gorm:"foreignKey:CusID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Employees           []Employee         `gorm:"foreignKey:CusID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"employees,omitempty"`
	EmployeeAssignments []EmployeeCustomer `gorm:"foreignKey:CusID;references:ID;constraint:OnDelete:CASCADE" json:"assigned_employees,omitempty"`
}

func (Customer) TableName() string {
	return "customer"
}
