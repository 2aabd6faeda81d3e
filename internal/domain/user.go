package domain

import "strings"

// Display fallbacks used when a user has no name on file.
const (
	DefaultDisplayName = "User"
	DefaultInitials    = "U"
)

// User is the authenticated user's identity and profile data, held for the
// duration of a session. Profile updates replace the whole object; it is
// never partially merged.
type User struct {
	// ID is the auth provider's identifier for this user.
	ID string `json:"id"`

	// Email is the sign-in address. It is not editable through the profile.
	Email string `json:"email"`

	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Address        string `json:"address,omitempty"`
	DateOfBirth    string `json:"dateOfBirth,omitempty"`
	PassportNumber string `json:"passportNumber,omitempty"`
	Avatar         string `json:"avatar,omitempty"`
}

// DisplayName derives the name shown for the user: "First Last" when both
// names are present, falling back to the email address, then to a literal
// default.
func (u *User) DisplayName() string {
	if u.FirstName != "" && u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	if u.Email != "" {
		return u.Email
	}
	return DefaultDisplayName
}

// Initials derives the avatar initials: first characters of both names when
// present, falling back to the uppercased first character of the email, then
// to a literal default.
func (u *User) Initials() string {
	if u.FirstName != "" && u.LastName != "" {
		return u.FirstName[:1] + u.LastName[:1]
	}
	if u.Email != "" {
		return strings.ToUpper(u.Email[:1])
	}
	return DefaultInitials
}

// ProfileForm is the full profile snapshot sent on save. Email is carried for
// display but is not mutable through the profile editor.
type ProfileForm struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	DateOfBirth    string `json:"dateOfBirth"`
	PassportNumber string `json:"passportNumber"`
}

// FormFromUser builds the profile form pre-filled from the user, trimming the
// date of birth to its date portion the way the form input expects.
func FormFromUser(u *User) ProfileForm {
	dob := u.DateOfBirth
	if i := strings.IndexByte(dob, 'T'); i >= 0 {
		dob = dob[:i]
	}
	return ProfileForm{
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Email:          u.Email,
		Phone:          u.Phone,
		Address:        u.Address,
		DateOfBirth:    dob,
		PassportNumber: u.PassportNumber,
	}
}
