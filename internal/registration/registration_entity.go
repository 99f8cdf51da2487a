package registration

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// StatusNew is the fixed lifecycle status at creation. Follow-up states
// belong to whatever back-office tooling reads the table, not to this service.
const StatusNew = "new"

type Registration struct {
	ID                    uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Status                string         `gorm:"type:varchar(30);not null"`
	InterestType          string         `gorm:"type:varchar(30);not null"`
	BusinessOpportunities pq.StringArray `gorm:"type:text[]"`
	WealthSolutions       pq.StringArray `gorm:"type:text[]"`
	FirstName             string         `gorm:"type:varchar(100);not null"`
	LastName              string         `gorm:"type:varchar(100);not null"`
	Phone                 string         `gorm:"type:varchar(50);not null"`
	Email                 string         `gorm:"type:varchar(255);not null;index"`
	Profession            string         `gorm:"type:varchar(150)"`
	PreferredDays         pq.StringArray `gorm:"type:text[]"`
	PreferredTime         pq.StringArray `gorm:"type:text[]"`
	ReferredBy            string         `gorm:"type:varchar(150);not null"`
	CreatedAt             time.Time      `gorm:"not null"`
}

func (Registration) TableName() string {
	return "client_registrations"
}

// toEntity maps a normalized request onto the persisted row with status
// fixed to "new". Call on normalized requests only.
func (r SubmitRegistrationRequest) toEntity() *Registration {
	return &Registration{
		Status:                StatusNew,
		InterestType:          r.InterestType,
		BusinessOpportunities: pq.StringArray(r.BusinessOpportunities),
		WealthSolutions:       pq.StringArray(r.WealthSolutions),
		FirstName:             r.FirstName,
		LastName:              r.LastName,
		Phone:                 r.Phone,
		Email:                 r.Email,
		Profession:            r.Profession,
		PreferredDays:         pq.StringArray(r.PreferredDays),
		PreferredTime:         pq.StringArray(r.PreferredTime),
		ReferredBy:            r.ReferredBy,
	}
}
