package entities

import (
	"time"

	"github.com/google/uuid"
)

// User is the owner of meetings. Identity resolution happens in the auth
// shim; user ids are derived deterministically from the email address so the
// same caller always maps to the same row.
type User struct {
	ID        uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;primary_key"`
	Email     string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	AvatarURL *string   `json:"avatar_url,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// UserIDFromEmail derives a stable UUID for an email address
func UserIDFromEmail(email string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte(email))
}
