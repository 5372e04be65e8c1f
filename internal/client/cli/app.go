package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/ekozlova/artshop/internal/client/api"
	"github.com/ekozlova/artshop/internal/client/bus"
	"github.com/ekozlova/artshop/internal/client/cart"
	"github.com/ekozlova/artshop/internal/client/checkout"
	"github.com/ekozlova/artshop/internal/client/config"
	"github.com/ekozlova/artshop/internal/client/coupon"
	"github.com/ekozlova/artshop/internal/client/favorites"
	"github.com/ekozlova/artshop/internal/client/localdb"
	favrepo "github.com/ekozlova/artshop/internal/client/repositories/favorites"
	"github.com/ekozlova/artshop/internal/client/session"
	"github.com/ekozlova/artshop/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the storefront surfaces together. Each surface keeps its own
// cached view of the cart (the prompt badge here) and learns about changes
// only through the broadcaster, the same way the independently mounted pages
// of the site do.
type App struct {
	config  *config.Config
	log     logging.Logger
	client  api.Client
	session *session.Session

	cartChanges *bus.Broadcaster
	favChanges  *bus.Broadcaster

	store     *cart.Store
	coupons   *coupon.Engine
	favs      *favorites.Registry
	wizard    *checkout.Controller
	db        *sql.DB
	reader    *bufio.Reader
	unsub     []func()
	badge     atomic.Int64
	adminUser string
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := localdb.Open(ctx, cfg.LocalDBPath)
	if err != nil {
		return nil, err
	}

	sess := session.New()
	client := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, sess)

	cartChanges := bus.NewBroadcaster()
	favChanges := bus.NewBroadcaster()

	store := cart.NewStore(client, cartChanges, log)

	favs, err := favorites.NewRegistry(ctx, favrepo.NewSQLiteRepository(db), favChanges)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := &App{
		config:      cfg,
		log:         log,
		client:      client,
		session:     sess,
		cartChanges: cartChanges,
		favChanges:  favChanges,
		store:       store,
		coupons:     coupon.NewEngine(client, store),
		favs:        favs,
		db:          db,
		reader:      bufio.NewReader(os.Stdin),
	}

	// The badge is a subscriber like any other surface: it refetches on each
	// cart-changed event rather than trusting whoever published it.
	a.unsub = append(a.unsub, cartChanges.Subscribe(func() {
		if err := store.Refresh(ctx); err != nil {
			log.Warn(ctx, "badge refresh failed", "error", err)
			return
		}
		a.badge.Store(int64(store.LineCount()))
	}))

	a.unsub = append(a.unsub, sess.OnExpire(func() {
		a.adminUser = ""
		fmt.Println("Session expired, please login again.")
	}))

	return a, nil
}

func (a *App) isAdmin() bool {
	return a.adminUser != "" && a.session.IsValid()
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	// Seed the badge before the first prompt; an unreachable server just
	// leaves it at zero.
	if err := a.store.Refresh(ctx); err != nil {
		a.log.Warn(ctx, "initial cart fetch failed", "error", err)
	} else {
		a.badge.Store(int64(a.store.LineCount()))
	}

	a.root(ctx)
}

// Close cancels subscriptions and releases the local database.
func (a *App) Close() {
	for _, cancel := range a.unsub {
		cancel()
	}
	a.unsub = nil
	if a.db != nil {
		_ = a.db.Close()
	}
}
