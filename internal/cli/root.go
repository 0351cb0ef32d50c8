package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	user := a.auth.ActiveIdentity().Get()
	if user == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", user.UserName)
}

// Root runs the interactive loop: read a line, dispatch the first token as
// a command. Errors from handlers are logged by the handlers themselves;
// the loop stays alive until "exit"/"quit" or EOF.
func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to the shopfront demo (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("shop %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: users [query], user <id>, deluser <id>, products [query], product-category <c>, addproduct, delproduct <id>, whoami, token, logout, exit")
			} else {
				fmt.Println("Available commands: login, signup, exit")
			}

		case "login":
			if err := a.Login(ctx); err != nil {
				log.Printf("login failed: %v", err)
			}

		case "signup":
			if err := a.Signup(ctx); err != nil {
				log.Printf("signup failed: %v", err)
			}

		case "logout":
			if !a.requireLogin() {
				continue
			}
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "token":
			if token, ok := a.auth.CurrentToken(ctx); ok {
				fmt.Println(token)
			} else {
				fmt.Println("No active session")
			}

		case "users", "u":
			if !a.requireLogin() {
				continue
			}
			if err := a.ListUsers(ctx, strings.Join(args, " ")); err != nil {
				log.Printf("%v", err)
			}

		case "user":
			if !a.requireLogin() || !requireArg(args, "user <id>") {
				continue
			}
			if err := a.ShowUser(ctx, args[0]); err != nil {
				log.Printf("%v", err)
			}

		case "deluser":
			if !a.requireLogin() || !requireArg(args, "deluser <id>") {
				continue
			}
			if err := a.DeleteUser(ctx, args[0]); err != nil {
				log.Printf("%v", err)
			}

		case "products", "p":
			if !a.requireLogin() {
				continue
			}
			if err := a.ListProducts(ctx, strings.Join(args, " ")); err != nil {
				log.Printf("%v", err)
			}

		case "product-category":
			if !a.requireLogin() || !requireArg(args, "product-category <category>") {
				continue
			}
			if err := a.ProductsByCategory(ctx, args[0]); err != nil {
				log.Printf("%v", err)
			}

		case "addproduct":
			if !a.requireLogin() {
				continue
			}
			if err := a.AddProduct(ctx); err != nil {
				log.Printf("%v", err)
			}

		case "delproduct":
			if !a.requireLogin() || !requireArg(args, "delproduct <id>") {
				continue
			}
			if err := a.DeleteProduct(ctx, args[0]); err != nil {
				log.Printf("%v", err)
			}

		case "exit", "quit":
			return

		default:
			fmt.Printf("Unknown command: %s (type 'help')\n", cmd)
		}
	}
}

func (a *App) requireLogin() bool {
	if a.isLoggedIn() {
		return true
	}
	fmt.Println("Please login first")
	return false
}

func requireArg(args []string, usage string) bool {
	if len(args) >= 1 {
		return true
	}
	fmt.Printf("Usage: %s\n", usage)
	return false
}
