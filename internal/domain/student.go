package domain

import "time"

type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "Active"
	AccountStatusPending   AccountStatus = "Pending"
	AccountStatusSuspended AccountStatus = "Suspended"
)

type Student struct {
	ID            int32         `json:"id"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	PhoneNumber   string        `json:"phone_number"`
	Major         string        `json:"major"`
	Year          int32         `json:"year"`
	AccountStatus AccountStatus `json:"account_status"`
	CreatedOn     time.Time     `json:"created_on"`
	UpdatedOn     time.Time     `json:"updated_on"`
}

// Admin is a dashboard operator. Sessions are server-validated JWTs, never
// a client-held role flag.
type Admin struct {
	ID           int32     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedOn    time.Time `json:"created_on"`
}
