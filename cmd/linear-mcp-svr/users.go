/*-------------------------------------------------------------------------
 *
 * Linear MCP Server
 *
 * Copyright (c) 2026, Linear MCP Server contributors
 * This software is released under The MIT License
 *
 *-------------------------------------------------------------------------
 */

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"
	"linear-mcp/internal/auth"
)

// promptUsername reads a username from stdin when one was not supplied
// on the command line.
func promptUsername(action string) (string, error) {
	fmt.Printf("Enter username%s: ", action)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read username: %w", err)
	}
	username := strings.TrimSpace(input)
	if username == "" {
		return "", fmt.Errorf("username is required")
	}
	return username, nil
}

// promptPassword reads a password without echo and confirms it.
func promptPassword(label string) (string, error) {
	fmt.Printf("Enter %s: ", label)
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // New line after password input
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	password := string(passwordBytes)
	if password == "" {
		return "", nil
	}

	fmt.Printf("Confirm %s: ", label)
	confirmBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // New line after password input
	if err != nil {
		return "", fmt.Errorf("failed to read password confirmation: %w", err)
	}
	if password != string(confirmBytes) {
		return "", fmt.Errorf("passwords do not match")
	}
	return password, nil
}

// addUserCommand handles the add-user command
func addUserCommand(userFile, username, password, annotation string) error {
	// Load or create user store
	var store *auth.UserStore

	if _, err := os.Stat(userFile); os.IsNotExist(err) {
		store = auth.InitializeUserStore()
		fmt.Fprintf(os.Stderr, "Creating new user file: %s\n", userFile)
	} else {
		var err error
		store, err = auth.LoadUserStore(userFile)
		if err != nil {
			return fmt.Errorf("failed to load user file: %w", err)
		}
	}

	if username == "" {
		var err error
		username, err = promptUsername("")
		if err != nil {
			return err
		}
	}

	if password == "" {
		var err error
		password, err = promptPassword("password")
		if err != nil {
			return err
		}
		if password == "" {
			return fmt.Errorf("password is required")
		}
	}

	// Prompt for annotation if not provided
	if annotation == "" {
		fmt.Print("Enter annotation/note for this user (optional): ")
		reader := bufio.NewReader(os.Stdin)
		if input, err := reader.ReadString('\n'); err == nil {
			annotation = strings.TrimSpace(input)
		}
	}

	if err := store.AddUser(username, password, annotation); err != nil {
		return fmt.Errorf("failed to add user: %w", err)
	}

	if err := auth.SaveUserStore(userFile, store); err != nil {
		return fmt.Errorf("failed to save user file: %w", err)
	}

	fmt.Println("\n" + strings.Repeat("=", 70))
	fmt.Println("User created successfully!")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("\nUsername: %s\n", username)
	if annotation != "" {
		fmt.Printf("Note:     %s\n", annotation)
	}
	fmt.Printf("Status:   Enabled\n")
	fmt.Println(strings.Repeat("=", 70) + "\n")

	return nil
}

// updateUserCommand handles the update-user command
func updateUserCommand(userFile, username, newPassword, newAnnotation string) error {
	store, err := auth.LoadUserStore(userFile)
	if err != nil {
		return fmt.Errorf("failed to load user file: %w", err)
	}

	if username == "" {
		username, err = promptUsername("")
		if err != nil {
			return err
		}
	}

	// If neither password nor annotation provided, prompt for what to update
	if newPassword == "" && newAnnotation == "" {
		fmt.Println("What would you like to update?")
		fmt.Print("Update password? (y/N): ")
		reader := bufio.NewReader(os.Stdin)
		if input, err := reader.ReadString('\n'); err == nil {
			response := strings.TrimSpace(strings.ToLower(input))
			if response == "y" || response == "yes" {
				newPassword, err = promptPassword("new password")
				if err != nil {
					return err
				}
			}
		}

		fmt.Print("Update annotation? (y/N): ")
		if input, err := reader.ReadString('\n'); err == nil {
			response := strings.TrimSpace(strings.ToLower(input))
			if response == "y" || response == "yes" {
				fmt.Print("Enter new annotation (leave empty to clear): ")
				if input, err := reader.ReadString('\n'); err == nil {
					newAnnotation = strings.TrimSpace(input)
				}
			}
		}

		if newPassword == "" && newAnnotation == "" {
			return fmt.Errorf("no updates specified")
		}
	}

	if err := store.UpdateUser(username, newPassword, newAnnotation); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	if err := auth.SaveUserStore(userFile, store); err != nil {
		return fmt.Errorf("failed to save user file: %w", err)
	}

	fmt.Printf("User '%s' updated successfully\n", username)
	return nil
}

// deleteUserCommand handles the delete-user command
func deleteUserCommand(userFile, username string) error {
	store, err := auth.LoadUserStore(userFile)
	if err != nil {
		return fmt.Errorf("failed to load user file: %w", err)
	}

	if username == "" {
		username, err = promptUsername(" to delete")
		if err != nil {
			return err
		}
	}

	// Confirm deletion
	fmt.Printf("Are you sure you want to delete user '%s'? (y/N): ", username)
	reader := bufio.NewReader(os.Stdin)
	if input, err := reader.ReadString('\n'); err == nil {
		response := strings.TrimSpace(strings.ToLower(input))
		if response != "y" && response != "yes" {
			fmt.Println("Deletion canceled")
			return nil
		}
	}

	if err := store.RemoveUser(username); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if err := auth.SaveUserStore(userFile, store); err != nil {
		return fmt.Errorf("failed to save user file: %w", err)
	}

	fmt.Printf("User '%s' deleted successfully\n", username)
	return nil
}

// listUsersCommand handles the list-users command
func listUsersCommand(userFile string) error {
	store, err := auth.LoadUserStore(userFile)
	if err != nil {
		return fmt.Errorf("failed to load user file: %w", err)
	}

	users := store.ListUsers()
	if len(users) == 0 {
		fmt.Println("No users found.")
		return nil
	}

	fmt.Println("\nUsers:")
	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("%-20s %-20s %-10s %s\n", "Username", "Created", "Status", "Annotation")
	fmt.Println(strings.Repeat("-", 80))

	for _, user := range users {
		status := "Enabled"
		if !user.Enabled {
			status = "DISABLED"
		}

		created := user.CreatedAt.Format("2006-01-02 15:04")

		annotation := user.Annotation
		if len(annotation) > 20 {
			annotation = annotation[:17] + "..."
		}

		fmt.Printf("%-20s %-20s %-10s %s\n",
			user.Username,
			created,
			status,
			annotation)
	}
	fmt.Println(strings.Repeat("=", 80) + "\n")

	return nil
}

// setUserEnabledCommand handles the enable-user and disable-user commands
func setUserEnabledCommand(userFile, username string, enabled bool) error {
	store, err := auth.LoadUserStore(userFile)
	if err != nil {
		return fmt.Errorf("failed to load user file: %w", err)
	}

	action := "enable"
	if !enabled {
		action = "disable"
	}

	if username == "" {
		username, err = promptUsername(" to " + action)
		if err != nil {
			return err
		}
	}

	if err := store.SetEnabled(username, enabled); err != nil {
		return fmt.Errorf("failed to %s user: %w", action, err)
	}

	if err := auth.SaveUserStore(userFile, store); err != nil {
		return fmt.Errorf("failed to save user file: %w", err)
	}

	fmt.Printf("User '%s' %sd successfully\n", username, action)
	return nil
}
