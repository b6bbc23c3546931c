package model

// Credentials identify the portal account for a single run.
type Credentials struct {
	Email    string
	Password string
}
