package auth

import "github.com/FBenja/fleet-api/internal/domain"

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	User  domain.User
	Token string
}
