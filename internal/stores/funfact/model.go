package funfact

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ethanbaker/states-api/pkg/funfact"
	"github.com/google/uuid"
)

// FactList is an ordered list of facts stored as a JSON array column
type FactList []string

// Value implements the driver.Valuer interface for database storage
func (l FactList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}

	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements the sql.Scanner interface for database retrieval
func (l *FactList) Scan(value any) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*l = FactList{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into FactList", value)
	}

	facts := []string{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &facts); err != nil {
			return fmt.Errorf("failed to unmarshal FactList: %w", err)
		}
	}

	*l = FactList(facts)
	return nil
}

// RecordModel represents the database model for a state's fun facts
type RecordModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`

	StateCode string   `json:"stateCode" gorm:"column:state_code;unique;not null;size:2"`
	Funfacts  FactList `json:"funfacts" gorm:"column:funfacts;type:text;not null"`
}

// TableName sets the table name for GORM
func (RecordModel) TableName() string {
	return "fun_facts"
}

// toRecord converts the model into the public record type
func (m *RecordModel) toRecord() *funfact.Record {
	facts := make([]string, len(m.Funfacts))
	copy(facts, m.Funfacts)

	return &funfact.Record{
		StateCode: m.StateCode,
		Funfacts:  facts,
	}
}
