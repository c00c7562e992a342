package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
	"gorm.io/gorm"

	"sosio/internal/config"
	"sosio/internal/database"
	apperrors "sosio/internal/errors"
	"sosio/internal/logger"
	"sosio/internal/models"
	"sosio/internal/services"
	"sosio/internal/validator"
)

// opener connects to the member store. The returned func releases it.
type opener func() (*gorm.DB, func() error, error)

type memberInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	Role     string `validate:"member_role"`
	Codename string `validate:"omitempty,codename"`
}

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, openConfigured); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, open opener) error {
	fs := flag.NewFlagSet("adduser", flag.ContinueOnError)
	fs.SetOutput(stderr)

	email := fs.String("email", "", "Member email")
	passwordFlag := fs.String("password", "", "Password (optional, will prompt if omitted)")
	fullname := fs.String("fullname", "", "Full name (optional, derived from email at login if empty)")
	codename := fs.String("codename", "", "Codename, 2-3 uppercase letters or digits (optional)")
	role := fs.String("role", models.RoleMember, "Role: member or admin")
	balanceFlag := fs.String("balance", "", "Opening balance (optional)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" {
		fmt.Fprintln(stdout, "Usage: adduser -email <email> [-password <password>] [-fullname <name>] [-codename <XYZ>] [-role member|admin] [-balance <amount>]")
		fs.PrintDefaults()
		return fmt.Errorf("missing required flags: email")
	}

	password := *passwordFlag
	if password == "" {
		fmt.Fprint(stdout, "Password: ")
		var err error
		password, err = readPassword(stdin)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Fprintln(stdout) // Print newline after password input
	}

	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("password cannot be empty")
	}

	input := memberInput{Email: *email, Password: password, Role: *role, Codename: *codename}
	if err := validator.Struct(input); err != nil {
		return fmt.Errorf("invalid member: %w", err)
	}

	var balance *float64
	if *balanceFlag != "" {
		v, err := strconv.ParseFloat(*balanceFlag, 64)
		if err != nil {
			return fmt.Errorf("invalid balance %q: %w", *balanceFlag, err)
		}
		balance = &v
	}

	db, closeDB, err := open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer closeDB()

	member, err := services.NewMemberService(db).CreateMember(context.Background(), services.NewMember{
		Email:    *email,
		Password: password,
		Fullname: *fullname,
		Codename: *codename,
		Role:     *role,
		Balance:  balance,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEmail) {
			return fmt.Errorf("member %s already exists", *email)
		}
		return fmt.Errorf("failed to create member: %w", err)
	}

	fmt.Fprintf(stdout, "Member %s created successfully with ID %d\n", member.Email, member.ID)
	return nil
}

// openConfigured connects using the server's environment configuration and
// brings the schema up to date.
func openConfigured() (*gorm.DB, func() error, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	dbConfig, err := database.NewConfig(cfg)
	if err != nil {
		return nil, nil, err
	}
	manager, err := database.NewManager(dbConfig)
	if err != nil {
		return nil, nil, err
	}
	if err := manager.Migrate(); err != nil {
		manager.Close()
		return nil, nil, err
	}
	return manager.DB(), manager.Close, nil
}

func readPassword(stdin io.Reader) (string, error) {
	// Check if stdin is a terminal
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bytePassword, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(bytePassword), nil
	}

	// Fallback for non-terminal (e.g. tests, pipes)
	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
