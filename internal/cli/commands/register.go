package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/r3fitness/fitctl/internal/cli/client"
	"github.com/r3fitness/fitctl/internal/cli/fielderrs"
)

var validate = validator.New()

// NewRegisterCmd creates the register command
func NewRegisterCmd() *cobra.Command {
	var input client.RegisterInput
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(cmd, input, serverAlias)
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "Full name")
	cmd.Flags().StringVar(&input.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&input.Password, "password", "", "Password (min. 8 characters)")
	cmd.Flags().IntVar(&input.Age, "age", 0, "Age in years")
	cmd.Flags().StringVar(&input.Phone, "phone", "", "Phone number (optional)")
	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias (uses the selected server if not specified)")

	return cmd
}

func runRegister(cmd *cobra.Command, input client.RegisterInput, serverAlias string) error {
	// Validate locally before touching the network; the server re-validates
	// and its field errors are surfaced the same way.
	if err := validateRegisterInput(input); err != nil {
		return err
	}

	app, err := newApp(serverAlias)
	if err != nil {
		return err
	}

	if err := app.requirePublic(cmd.Context()); err != nil {
		return err
	}

	user, err := app.api.Register(cmd.Context(), input)
	if err != nil {
		printAPIErrors(err)
		return fmt.Errorf("registration failed: %w", err)
	}

	fmt.Println("✓ Account created!")
	fmt.Printf("  User: %s (%s)\n", user.Name, user.Email)
	fmt.Println("\nLog in with: fitctl login --email", user.Email)

	return nil
}

func validateRegisterInput(input client.RegisterInput) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	errs := fielderrs.New()
	for _, fieldErr := range validationErrs {
		errs.SetField(fieldErr.Field(), registerFieldMessage(fieldErr))
	}
	for field, message := range errs.Fields() {
		fmt.Fprintf(os.Stderr, "  %s: %s\n", field, message)
	}
	return fmt.Errorf("invalid input")
}

func registerFieldMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Field() {
	case "Name":
		return "name is required (min. 2 characters)"
	case "Email":
		return "a valid email address is required"
	case "Password":
		return "password must be at least 8 characters"
	case "Age":
		return "age must be between 12 and 120"
	case "Phone":
		return "phone number is too short"
	default:
		return fieldErr.Error()
	}
}
