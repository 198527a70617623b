package database

import (
	"path/filepath"
	"testing"

	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type foreignKey struct {
	Table    string `gorm:"column:table"`
	From     string `gorm:"column:from"`
	To       string `gorm:"column:to"`
	OnDelete string `gorm:"column:on_delete"`
}

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Connect(&config.Config{
		DBDriver: "sqlite",
		DBPath:   filepath.Join(t.TempDir(), "schema.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	require.NoError(t, Migrate(db))
	return db
}

func foreignKeys(t *testing.T, db *gorm.DB, table string) map[string]string {
	t.Helper()
	var rows []foreignKey
	require.NoError(t, db.Raw("PRAGMA foreign_key_list(" + table + ")").Scan(&rows).Error)

	out := make(map[string]string, len(rows))
	for _, r := range rows {
		out[r.From] = r.Table + "." + r.To
		assert.Equal(t, "CASCADE", r.OnDelete, "%s.%s", table, r.From)
	}
	return out
}

func TestMigrate_ForeignKeysPointAtParents(t *testing.T) {
	db := openSQLite(t)

	assert.Empty(t, foreignKeys(t, db, "customer"))
	assert.Empty(t, foreignKeys(t, db, "job"))
	assert.Equal(t, map[string]string{
		"cus_id": "customer.cus_id",
	}, foreignKeys(t, db, "employee"))
	assert.Equal(t, map[string]string{
		"cus_id": "customer.cus_id",
	}, foreignKeys(t, db, "customer_auth"))
	assert.Equal(t, map[string]string{
		"emp_id": "employee.emp_id",
		"job_id": "job.job_id",
	}, foreignKeys(t, db, "employee_job"))
	assert.Equal(t, map[string]string{
		"emp_id": "employee.emp_id",
		"cus_id": "customer.cus_id",
	}, foreignKeys(t, db, "employee_customer"))
}

func TestMigrate_ChildRowsInsertAndCascade(t *testing.T) {
	db := openSQLite(t)

	require.NoError(t, db.Exec(`INSERT INTO customer (cus_firstname, cus_lastname, cus_email, cus_phone_number, cus_password, cus_status)
		VALUES ('Jane', 'Doe', 'jane@example.com', '1234567890', 'x', 'active')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO employee (emp_name, emp_email, emp_mobile_number, emp_password, emp_company_name, cus_id)
		VALUES ('Sam', 'sam@example.com', '5551234567', 'x', 'Acme', 1)`).Error)
	require.NoError(t, db.Exec(`INSERT INTO job (job_name, job_category) VALUES ('Cleaner', 'onsite')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO employee_job (emp_id, job_id) VALUES (1, 1)`).Error)

	require.Error(t, db.Exec(`INSERT INTO employee_job (emp_id, job_id) VALUES (1, 99)`).Error)

	require.NoError(t, db.Exec(`DELETE FROM job WHERE job_id = 1`).Error)
	var n int64
	require.NoError(t, db.Table("employee_job").Count(&n).Error)
	assert.Zero(t, n)
}

func TestConnect_UnsupportedDriver(t *testing.T) {
	_, err := Connect(&config.Config{DBDriver: "oracle"})
	require.Error(t, err)
}
