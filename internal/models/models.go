package models

import (
	"time"
)

// Message represents a WhatsApp Cloud API message, inbound or outbound
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	WaID      string    `gorm:"index;not null" json:"wa_id"`
	Sender    string    `gorm:"not null" json:"sender"`
	Content   string    `gorm:"type:text" json:"content"`
	Type      string    `gorm:"type:varchar(50)" json:"type"`
	Status    string    `gorm:"type:varchar(20)" json:"status"` // received, sent, failed
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Message) TableName() string {
	return "messages"
}

// Submission is one validated form submission
type Submission struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Reference        string     `gorm:"type:varchar(36);uniqueIndex;not null" json:"reference"`
	Form             string     `gorm:"type:varchar(50);index;not null" json:"form"` // visa_enquiry, general_enquiry, fresh_passport, passport_renewal
	ServiceType      string     `gorm:"type:varchar(100)" json:"service_type"`
	Name             string     `gorm:"type:varchar(255)" json:"name"`
	Email            string     `gorm:"type:varchar(255)" json:"email"`
	Phone            string     `gorm:"type:varchar(50)" json:"phone"`
	SelectedCountry  string     `gorm:"type:varchar(100)" json:"selected_country"`
	PreferredContact string     `gorm:"type:varchar(20)" json:"preferred_contact"`
	Payload          string     `gorm:"type:text" json:"payload"` // JSON record as submitted
	Deliveries       []Delivery `gorm:"foreignKey:SubmissionID;constraint:OnDelete:CASCADE" json:"deliveries,omitempty"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (Submission) TableName() string {
	return "submissions"
}

// Delivery records the outcome of handing a submission to one channel
type Delivery struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SubmissionID uint      `gorm:"index;not null" json:"submission_id"`
	Channel      string    `gorm:"type:varchar(20);not null" json:"channel"` // whatsapp, mail, endpoint, notify
	Target       string    `gorm:"type:text" json:"target"`
	OK           bool      `json:"ok"`
	Error        string    `gorm:"type:text" json:"error,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Delivery) TableName() string {
	return "deliveries"
}

// All lists every ledger model, in dependency order, for migrations.
func All() []interface{} {
	return []interface{}{
		&Message{},
		&Submission{},
		&Delivery{},
	}
}
