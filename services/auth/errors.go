package auth

// InvalidCredentialsError is returned for an unknown email or wrong password.
// The two cases share one message so login probing cannot tell them apart.
type InvalidCredentialsError struct{}

func (e InvalidCredentialsError) Error() string {
	return "invalid email or password"
}

// DuplicateAccountError signals a registration against an email already in use.
type DuplicateAccountError struct {
	Email string
}

func (e DuplicateAccountError) Error() string {
	return "an account already exists for " + e.Email
}
