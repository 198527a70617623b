package models

import "time"

// EmployeeJob assigns a job to an employee. The unique index on emp_id is what
// guarantees an employee never holds more than one job.
type EmployeeJob struct {
	ID        uint      `gorm:"column:emp_job_id;primaryKey;autoIncrement" json:"emp_job_id"`
	EmpID     uint      `gorm:"column:emp_id;not null;uniqueIndex:unique_employee_job_emp" json:"emp_id"`
	JobID     uint      `gorm:"column:job_id;not null;index" json:"job_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Read-only preload; the FK to job is declared on Job.Assignments.
	Job *Job `gorm:"foreignKey:ID;references:JobID;-:migration" json:"job,omitempty"`
}

func (EmployeeJob) TableName() string {
	return "employee_job"
}
