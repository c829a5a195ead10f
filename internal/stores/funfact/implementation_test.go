package funfact

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// newOfflineDB opens a MySQL dialect gorm handle that never dials the server,
// for rendering statements with ToSQL
func newOfflineDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "user:pass@tcp(127.0.0.1:3306)/states?parseTime=true",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)

	return db
}

func TestClaimRecordIgnoresExistingRow(t *testing.T) {
	db := newOfflineDB(t)

	query := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		model := RecordModel{ID: uuid.New(), StateCode: "GA", Funfacts: FactList{}}
		return claimRecord(tx, &model)
	})

	assert.Contains(t, query, "INSERT INTO `fun_facts`")
	assert.Contains(t, query, "ON DUPLICATE KEY UPDATE")
	assert.Contains(t, query, "'GA'")
	assert.Contains(t, query, "'[]'")
}

func TestLockRecordSelectsForUpdate(t *testing.T) {
	db := newOfflineDB(t)

	query := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var model RecordModel
		return lockRecord(tx, "GA", &model)
	})

	assert.Contains(t, query, "SELECT * FROM `fun_facts`")
	assert.Contains(t, query, "state_code = 'GA'")
	assert.Contains(t, query, "FOR UPDATE")
}
