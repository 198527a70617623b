package models

import "time"

// EmployeeCustomer grants a customer shared access to an employee. Ownership is
// carried by Employee.CusID; this table never implies it.
type EmployeeCustomer struct {
	ID        uint      `gorm:"column:emp_cus_id;primaryKey;autoIncrement" json:"emp_cus_id"`
	EmpID     uint      `gorm:"column:emp_id;not null;uniqueIndex:unique_employee_customer" json:"emp_id"`
	CusID     uint      `gorm:"column:cus_id;not null;uniqueIndex:unique_employee_customer;index" json:"cus_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Read-only preload; the FK to employee is declared on Employee.CustomerLinks.
	Employee *Employee `gorm:"foreignKey:ID;references:EmpID;-:migration" json:"employee,omitempty"`
}

func (EmployeeCustomer) TableName() string {
	return "employee_customer"
}
