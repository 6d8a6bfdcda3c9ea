package models

// UserAccount represents a registered member of the community.
// Password holds a bcrypt hash and is stripped before the record is handed to clients.
type UserAccount struct {
	ID        string `json:"id" validate:"omitempty,uuid"`
	Username  string `json:"username" validate:"required,min=1,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password,omitempty" validate:"required"`
	Contact   string `json:"contact" validate:"required"`
	Age       string `json:"age,omitempty"`
	Country   string `json:"country,omitempty"`
	Location  string `json:"location,omitempty"`
	Address   string `json:"address,omitempty"`
	Emergency string `json:"emergency,omitempty"`
	Streaks   int    `json:"streaks" validate:"gte=0"`
}

// Sanitized returns a copy of the account with the password removed.
func (u UserAccount) Sanitized() UserAccount {
	u.Password = ""
	return u
}
