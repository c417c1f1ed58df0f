package command

type DeletePostCommand struct {
	ID string
}

type DeletePostCommandResult struct {
	Message string `json:"message"`
}
