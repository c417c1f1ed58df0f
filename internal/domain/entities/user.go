package entities

// User is a registered account. Username is the identity carried in
// bearer tokens; both Username and Email are unique.
type User struct {
	Username     string
	Email        string
	PasswordHash string
}

func NewUser(username, email, passwordHash string) *User {
	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}
}
