package domain

import "time"

// User representa una cuenta registrada, con credencial propia u OAuth.
type User struct {
	ID                  string    `json:"id" xml:"id"`
	Email               string    `json:"email" xml:"email"`
	Name                string    `json:"name,omitempty" xml:"name,omitempty"`
	ProfilePicture      string    `json:"profile_picture,omitempty" xml:"profile_picture,omitempty"`
	PasswordHash        string    `json:"-" xml:"-"`
	SubscriptionTypeID  int       `json:"subscription_type_id" xml:"subscription_type_id"`
	FailedLoginAttempts int       `json:"failed_login_attempts" xml:"failed_login_attempts"`
	CreatedAt           time.Time `json:"created_at" xml:"created_at"`
}

// UserUpdate agrupa campos opcionales para actualizacion parcial.
type UserUpdate struct {
	Email               *string
	Password            *string
	SubscriptionTypeID  *int
	FailedLoginAttempts *int
}
