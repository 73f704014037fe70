package domain

import "time"

// Invitation vincula una cuenta invitadora con un email invitado.
// Solo puede existir una invitacion pendiente por par.
type Invitation struct {
	InvitedEmail    string    `json:"invited_user_email" xml:"invited_user_email"`
	InvitedByUserID string    `json:"invite_by_user_id" xml:"invite_by_user_id"`
	CreatedAt       time.Time `json:"created_at" xml:"created_at"`
}
