package services

const (
	MsgMissingFields       = "Missing required fields"
	MsgRegisterEmptyFields = "All fields must be non-empty"
	MsgUserExists          = "User already exists"
	MsgPasswordTooLong     = "Password must be at most 72 bytes"
	MsgRegistered          = "User registered successfully"

	MsgLoginEmptyFields   = "Both username and password must be provided"
	MsgInvalidCredentials = "Invalid credentials"
	MsgLoggedIn           = "Login successful"

	MsgTokenExpired = "Token has expired"
	MsgTokenInvalid = "Invalid token"

	MsgPostEmptyFields = "Both title and content must be provided"
	MsgInvalidPostID   = "Invalid blog ID format"
	MsgPostNotFound    = "Blog not found"
	MsgPostCreated     = "Blog created successfully"
	MsgPostUpdated     = "Blog updated successfully"
	MsgPostDeleted     = "Blog deleted successfully"
)

func anyMissing(fields ...*string) bool {
	for _, f := range fields {
		if f == nil {
			return true
		}
	}
	return false
}

func anyEmpty(fields ...*string) bool {
	for _, f := range fields {
		if *f == "" {
			return true
		}
	}
	return false
}
