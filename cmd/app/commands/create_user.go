package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	authDomain "github.com/0zzz7y/open-calendar-backend-sub001/internal/auth/domain"
	authUseCase "github.com/0zzz7y/open-calendar-backend-sub001/internal/auth/usecase"
	userDomain "github.com/0zzz7y/open-calendar-backend-sub001/internal/user/domain"
)

// RunCreateUser registers a new account from the command line. Supports both
// interactive mode (when password is empty, the user is prompted) and
// non-interactive mode (when password is provided). Outputs the new account in
// either text or JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	authUseCase authUseCase.UseCase,
	logger *slog.Logger,
	username string,
	email string,
	password string,
	format string,
	io IOTuple,
) error {
	logger.Info("creating new user", slog.String("username", username))

	// Prompt for the password when it was not passed as a flag
	if password == "" {
		var err error
		password, err = promptForPassword(io)
		if err != nil {
			return fmt.Errorf("failed to get password: %w", err)
		}
	}

	// Create input
	input := &authDomain.RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
	}

	// Register the user
	user, err := authUseCase.Register(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	// Output result based on format
	if format == "json" {
		outputJSON(user, io.Writer)
	} else {
		outputText(user, io.Writer)
	}

	logger.Info("user created successfully",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username),
	)

	return nil
}

// promptForPassword interactively prompts for a password and its confirmation.
func promptForPassword(io IOTuple) (string, error) {
	reader := bufio.NewReader(io.Reader)
	writer := io.Writer

	_, _ = fmt.Fprint(writer, "Enter password: ")
	password, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	password = strings.TrimSpace(password)

	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	_, _ = fmt.Fprint(writer, "Confirm password: ")
	confirmation, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read confirmation: %w", err)
	}
	confirmation = strings.TrimSpace(confirmation)

	if confirmation != password {
		return "", fmt.Errorf("passwords do not match")
	}

	return password, nil
}

// outputText outputs the result in human-readable text format.
func outputText(user *userDomain.User, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, "\nUser created successfully!")
	_, _ = fmt.Fprintf(writer, "User ID: %s\n", user.ID.String())
	_, _ = fmt.Fprintf(writer, "Username: %s\n", user.Username)
	_, _ = fmt.Fprintf(writer, "Email: %s\n", user.Email)
}

// outputJSON outputs the result in JSON format for machine consumption.
func outputJSON(user *userDomain.User, writer io.Writer) {
	result := map[string]string{
		"user_id":  user.ID.String(),
		"username": user.Username,
		"email":    user.Email,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
