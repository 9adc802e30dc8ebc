package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/printdvor/storefront-cli/internal/client/api"
	"github.com/printdvor/storefront-cli/internal/client/cart"
	"github.com/printdvor/storefront-cli/internal/client/config"
	"github.com/printdvor/storefront-cli/internal/client/services"
	"github.com/printdvor/storefront-cli/internal/client/session"
	"github.com/printdvor/storefront-cli/internal/client/state"
	"github.com/printdvor/storefront-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the stores and services behind the interactive client.
type App struct {
	config   *config.Config
	log      logging.Logger
	sessions *session.Store
	cart     *cart.Store

	auth       *services.AuthService
	catalog    *services.CatalogService
	checkout   *services.CheckoutService
	wishlist   *services.WishlistService
	orders     *services.OrderService
	backoffice *services.BackofficeService
	contact    *services.ContactService

	reader *bufio.Reader
}

// NewApp opens the local database, hydrates the session and cart stores and
// builds the service graph.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := state.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	notify := PrintNotifier{}
	sessions := session.NewStore(ctx, db, log)
	cartStore := cart.NewStore(ctx, db, log, notify, cfg.MaxQuantity)
	remote := api.New(cfg, sessions, log)

	return &App{
		config:     cfg,
		log:        log,
		sessions:   sessions,
		cart:       cartStore,
		auth:       services.NewAuthService(remote, sessions, log),
		catalog:    services.NewCatalogService(remote, log),
		checkout:   services.NewCheckoutService(remote, sessions, cartStore, notify, log),
		wishlist:   services.NewWishlistService(remote, sessions, log),
		orders:     services.NewOrderService(remote, sessions, log),
		backoffice: services.NewBackofficeService(remote, log),
		contact:    services.NewContactService(remote, log),
		reader:     bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.sessions.User() != nil
}

func (a *App) getStatus() string {
	user := a.sessions.User()
	if user == nil {
		return "(guest)"
	}
	return "(" + user.Email + ")"
}

// Run starts the storefront REPL over stdin and blocks until exit or EOF.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to the print-shop storefront (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
