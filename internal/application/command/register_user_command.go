package command

// Fields are pointers so that an absent field can be told apart from an
// empty one.
type RegisterUserCommand struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type RegisterUserCommandResult struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
}
