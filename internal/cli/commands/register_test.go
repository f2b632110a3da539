package commands

import (
	"testing"

	"github.com/r3fitness/fitctl/internal/cli/client"
)

func validInput() client.RegisterInput {
	return client.RegisterInput{
		Name:     "Maria Silva",
		Email:    "maria@example.com",
		Password: "supersecret",
		Age:      28,
		Phone:    "11999990000",
	}
}

func TestValidateRegisterInput_Valid(t *testing.T) {
	if err := validateRegisterInput(validInput()); err != nil {
		t.Errorf("expected valid input to pass, got: %v", err)
	}
}

func TestValidateRegisterInput_OptionalPhone(t *testing.T) {
	input := validInput()
	input.Phone = ""
	if err := validateRegisterInput(input); err != nil {
		t.Errorf("expected empty phone to be accepted, got: %v", err)
	}
}

func TestValidateRegisterInput_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*client.RegisterInput)
	}{
		{"short name", func(i *client.RegisterInput) { i.Name = "A" }},
		{"bad email", func(i *client.RegisterInput) { i.Email = "not-an-email" }},
		{"short password", func(i *client.RegisterInput) { i.Password = "short" }},
		{"too young", func(i *client.RegisterInput) { i.Age = 11 }},
		{"too old", func(i *client.RegisterInput) { i.Age = 121 }},
		{"short phone", func(i *client.RegisterInput) { i.Phone = "123" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)
			if err := validateRegisterInput(input); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
