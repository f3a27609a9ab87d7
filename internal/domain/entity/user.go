package entity

import "time"

// User is a registered account. Doctors log in against the seed catalog and
// carry their profile fields on the same struct.
//
// Password is kept as an opaque string; this store does not hash it.
type User struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Password    string    `json:"password,omitempty"`
	Role        Role      `json:"role"`
	Phone       string    `json:"phone,omitempty"`
	DateOfBirth string    `json:"dateOfBirth,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	Address     string    `json:"address,omitempty"`
	Specialty   string    `json:"specialty,omitempty"`
	Experience  string    `json:"experience,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	Credentials []string  `json:"credentials,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (u User) EntityID() string {
	return u.ID
}

// IsDoctor checks if user acts as a doctor
func (u *User) IsDoctor() bool {
	return u.Role == RoleDoctor
}

// IsPatient checks if user acts as a patient
func (u *User) IsPatient() bool {
	return u.Role == RolePatient
}

// WithoutPassword returns a copy safe to place in a session slot
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}

// ProfileUpdate holds the mutable profile fields. Nil fields are left untouched.
type ProfileUpdate struct {
	Name        *string
	Phone       *string
	DateOfBirth *string
	Gender      *string
	Address     *string
	Bio         *string
}

// Apply merges the non-nil fields of p into u
func (p ProfileUpdate) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.DateOfBirth != nil {
		u.DateOfBirth = *p.DateOfBirth
	}
	if p.Gender != nil {
		u.Gender = *p.Gender
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
}
