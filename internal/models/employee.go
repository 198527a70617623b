package models

import "time"

type Employee struct {
	ID           uint      `gorm:"column:emp_id;primaryKey;autoIncrement" json:"emp_id"`
	Name         string    `gorm:"column:emp_name;size:100;not null" json:"emp_name"`
	Email        string    `gorm:"column:emp_email;size:255;not null;uniqueIndex:unique_emp_email" json:"emp_email"`
	MobileNumber string    `gorm:"column:emp_mobile_number;size:15;not null;uniqueIndex:unique_emp_mobile_number" json:"emp_mobile_number"`
	Password     string    `gorm:"column:emp_password;not null" json:"-"`
	CompanyName  string    `gorm:"column:emp_company_name;size:100;not null" json:"emp_company_name"`
	CusID        uint      `gorm:"column:cus_id;not null;index" json:"cus_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	JobAssignment *EmployeeJob       `gorm:"foreignKey:EmpID;references:ID;constraint:OnDelete:CASCADE" json:"job_assignment,omitempty"`
	CustomerLinks []EmployeeCustomer `gorm:"foreignKey:EmpID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Employee) TableName() string {
	return "employee"
}
