// Command trackctl is a small operator tool for the student-track
// server. create-teacher provisions the first real account on a
// deployment that runs without seed data; generate-secret produces a
// value for JWT_SECRET.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"github.com/xurshid686/student-track/internal/randx"
	"github.com/xurshid686/student-track/internal/server/models"
	"github.com/xurshid686/student-track/internal/server/repositories/repomanager"
)

const bcryptCost = 12

var readPassword = term.ReadPassword

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "create-teacher":
		if err := createTeacher(os.Args[2:]); err != nil {
			log.Fatalf("create-teacher: %v", err)
		}
	case "generate-secret":
		if err := generateSecret(); err != nil {
			log.Fatalf("generate-secret: %v", err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: trackctl <create-teacher -d <database-dsn> | generate-secret>")
}

// generateSecret prints a random value suitable for JWT_SECRET.
func generateSecret() error {
	s, err := randx.HexString(32)
	if err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}

func createTeacher(args []string) error {
	fs := flag.NewFlagSet("create-teacher", flag.ExitOnError)
	dsn := fs.String("d", os.Getenv("DATABASE_DSN"), "database connection string")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *dsn == "" {
		return fmt.Errorf("database DSN is required (-d flag or DATABASE_DSN)")
	}

	reader := bufio.NewReader(os.Stdin)

	name, err := prompt(reader, "Full name")
	if err != nil {
		return err
	}
	username, err := prompt(reader, "Username")
	if err != nil {
		return err
	}
	email, err := prompt(reader, "Email")
	if err != nil {
		return err
	}
	if name == "" || username == "" || email == "" {
		return fmt.Errorf("name, username and email are required")
	}

	fmt.Print("Password: ")
	password, err := readPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return err
	}
	if len(password) == 0 {
		return fmt.Errorf("password must not be empty")
	}

	hash, err := bcrypt.GenerateFromPassword(password, bcryptCost)
	randx.Wipe(password)
	if err != nil {
		return err
	}

	ctx := context.Background()

	manager := repomanager.NewPostgresRepositoryManager(*dsn)
	if err := manager.Init(ctx); err != nil {
		return err
	}
	defer manager.Close()

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleTeacher,
		Name:         name,
	}

	if _, err := manager.Users(manager.Conn()).Create(ctx, user); err != nil {
		return err
	}

	fmt.Printf("Created teacher account %q (%s)\n", username, user.ID)
	return nil
}

func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Printf("%s: ", label)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
