package cli

import (
	"bufio"
	"context"
	"strings"
)

// execIface defines the storefront command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Catalog(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	AddToCart(ctx context.Context, args []string) error
	Cart(ctx context.Context) error
	Qty(ctx context.Context, args []string) error
	RemoveLine(ctx context.Context, args []string) error
	Pay(ctx context.Context, args []string) error
	Checkout(ctx context.Context) error
	Favorites(ctx context.Context, args []string) error
	OrderHistory(ctx context.Context) error
	Contact(ctx context.Context) error
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Dashboard(ctx context.Context) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn("store " + statusFn() + "> ")
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Browse:    catalog [query] [category:<id>] [page:<n>], show <id>")
			printlnFn("Cart:      add <id>, cart, qty <id> <n>, remove <id>, pay <card|sbp|cash>, checkout")
			if a.isLoggedIn() {
				printlnFn("Favorites: fav [add <id>|rm <id>]")
				printlnFn("Account:   orders, profile, dashboard, logout")
			} else {
				printlnFn("Account:   register, login")
			}
			printlnFn("Other:     contact, exit")

		case "catalog", "c":
			_ = a.Catalog(ctx, args)

		case "show":
			_ = a.Show(ctx, args)

		case "add":
			_ = a.AddToCart(ctx, args)

		case "cart":
			_ = a.Cart(ctx)

		case "qty":
			_ = a.Qty(ctx, args)

		case "remove", "rm":
			_ = a.RemoveLine(ctx, args)

		case "pay":
			_ = a.Pay(ctx, args)

		case "checkout":
			_ = a.Checkout(ctx)

		case "fav", "favorites":
			_ = a.Favorites(ctx, args)

		case "unfav":
			_ = a.Favorites(ctx, append([]string{"rm"}, args...))

		case "orders":
			_ = a.OrderHistory(ctx)

		case "contact":
			_ = a.Contact(ctx)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
