package command

type LoginUserCommand struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

type LoginUserCommandResult struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
}
