package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringList is a custom type for handling ordered string lists stored
// as JSON text.
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// Recipe is a user-owned recipe record. TypeID references the static
// recipe-type catalog; it is not enforced at the store level. UserID is
// always populated before the record is persisted, and every fetch,
// update and delete is scoped by it.
type Recipe struct {
	ID          uuid.UUID  `gorm:"type:varchar(36);primarykey" json:"id"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	TypeID      string     `gorm:"size:50;not null" json:"type_id"`
	UserID      uuid.UUID  `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Image       []byte     `gorm:"type:blob" json:"-"`
	Ingredients StringList `gorm:"type:text;not null;default:'[]'" json:"ingredients"`
	Steps       StringList `gorm:"type:text;not null;default:'[]'" json:"steps"`
	IsFavorite  bool       `gorm:"not null;default:false" json:"is_favorite"`
	PrepTime    int        `gorm:"not null;default:0" json:"prep_time"`
	Servings    int        `gorm:"not null;default:1" json:"servings"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
