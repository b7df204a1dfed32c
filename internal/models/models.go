// Package models defines the domain models for the leads database.
// IDs are ULIDs stored as TEXT; timestamps are stored as RFC3339 strings.
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// UserRole represents a user's role in the application.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleSales   UserRole = "sales"
)

// LeadStatus represents the pipeline state of a lead.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "NEW"
	LeadStatusContacted LeadStatus = "CONTACTED"
	LeadStatusReplied   LeadStatus = "REPLIED"
	LeadStatusClosed    LeadStatus = "CLOSED"
	LeadStatusLost      LeadStatus = "LOST"
)

// LeadTemperature represents how warm a lead is.
type LeadTemperature string

const (
	TemperatureHot  LeadTemperature = "HOT"
	TemperatureWarm LeadTemperature = "WARM"
	TemperatureCold LeadTemperature = "COLD"
)

// ContactChannel represents the channel used to reach a lead.
type ContactChannel string

const (
	ChannelWhatsApp ContactChannel = "whatsapp"
	ChannelEmail    ContactChannel = "email"
	ChannelSMS      ContactChannel = "sms"
	ChannelPhone    ContactChannel = "phone"
)

// User represents an application user.
type User struct {
	ID                  string     `json:"id"`
	Username            string     `json:"username"`
	Email               string     `json:"email"`
	PasswordHash        string     `json:"-"`
	Role                UserRole   `json:"role"`
	IsActive            bool       `json:"is_active"`
	FailedLoginAttempts int        `json:"-"`
	LockedUntil         *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"created_at"`
}

// SetPassword hashes the plaintext password and stores the hash.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the plaintext password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// Lead represents a business lead scraped or imported into the database.
type Lead struct {
	ID                string          `json:"id"`
	OrganizationID    *string         `json:"organization_id,omitempty"`
	Name              string          `json:"name"`
	Phone             string          `json:"phone"`
	Email             string          `json:"email"`
	City              string          `json:"city"`
	Address           string          `json:"address"`
	Country           string          `json:"country"`
	Language          string          `json:"language"`
	Category          string          `json:"category"`
	Rating            float64         `json:"rating"`
	MapsURL           string          `json:"maps_url"`
	Website           string          `json:"website"`
	WhatsAppLink      string          `json:"whatsapp_link"`
	FirstMessage      string          `json:"first_message"`
	LeadScore         int             `json:"lead_score"`
	Temperature       LeadTemperature `json:"temperature"`
	SuggestedPrice    string          `json:"suggested_price"`
	Status            LeadStatus      `json:"status"`
	Notes             string          `json:"notes"`
	IsHidden          bool            `json:"is_hidden"`
	HasWebsite        bool            `json:"has_website"`
	SequenceStep      int             `json:"sequence_step"`
	EngagementCount   int             `json:"engagement_count"`
	ResponseTimeHours *float64        `json:"response_time_hours,omitempty"`
	LastContacted     *time.Time      `json:"last_contacted,omitempty"`
	LastResponse      *time.Time      `json:"last_response,omitempty"`
	NextFollowup      *time.Time      `json:"next_followup,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// MessageTemplate represents an outreach message template.
// Templates are per-category with an A/B variant field; at most one template
// is flagged as the default for quick sends.
type MessageTemplate struct {
	ID             string         `json:"id"`
	OrganizationID *string        `json:"organization_id,omitempty"`
	Name           string         `json:"name"`
	Channel        ContactChannel `json:"channel"`
	Language       string         `json:"language"`
	Category       string         `json:"category"`
	Subject        string         `json:"subject,omitempty"` // email only
	Content        string         `json:"content"`
	Variant        string         `json:"variant"`
	TimesSent      int            `json:"times_sent"`
	TimesOpened    int            `json:"times_opened"`
	TimesResponded int            `json:"times_responded"`
	IsActive       bool           `json:"is_active"`
	IsDefault      bool           `json:"is_default"`
	CreatedAt      time.Time      `json:"created_at"`
}

// OpenRate returns the percentage of sends that were opened.
func (t *MessageTemplate) OpenRate() float64 {
	if t.TimesSent == 0 {
		return 0
	}
	return float64(t.TimesOpened) / float64(t.TimesSent) * 100
}

// ResponseRate returns the percentage of sends that got a response.
func (t *MessageTemplate) ResponseRate() float64 {
	if t.TimesSent == 0 {
		return 0
	}
	return float64(t.TimesResponded) / float64(t.TimesSent) * 100
}

// ContactLog records a single outreach attempt against a lead.
type ContactLog struct {
	ID                string         `json:"id"`
	LeadID            string         `json:"lead_id"`
	Channel           ContactChannel `json:"channel"`
	Direction         string         `json:"direction"`
	Message           string         `json:"message,omitempty"`
	TwilioMessageSID  *string        `json:"twilio_message_sid,omitempty"`
	ExternalMessageID *string        `json:"external_message_id,omitempty"`
	Status            string         `json:"status,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
}
