package entities

import "github.com/google/uuid"

// MeetingKeyword is a controlled-vocabulary term counted in a meeting's
// transcript. Only terms with frequency >= 2 are persisted, at most ten per
// meeting, and rows are never updated after the processing transaction.
type MeetingKeyword struct {
	ID        uuid.UUID `json:"keyword_id" gorm:"column:keyword_id;type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID uuid.UUID `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Keyword   string    `json:"keyword" gorm:"type:varchar(100);not null"`
	Frequency int       `json:"frequency" gorm:"not null;default:1"`
}

// TableName specifies the table name for MeetingKeyword
func (MeetingKeyword) TableName() string {
	return "meeting_keywords"
}

// NewMeetingKeyword creates a keyword row for a meeting
func NewMeetingKeyword(meetingID uuid.UUID, keyword string, frequency int) *MeetingKeyword {
	return &MeetingKeyword{
		ID:        uuid.New(),
		MeetingID: meetingID,
		Keyword:   keyword,
		Frequency: frequency,
	}
}
