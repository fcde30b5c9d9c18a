// storefrontctl is the password-gated admin console for the storefront
// backend: manage products and categories, work the RFQ queue, and inspect
// the dashboard counters from a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/stylehaus/storefront-client/internal/api"
	"github.com/stylehaus/storefront-client/internal/cache"
	"github.com/stylehaus/storefront-client/internal/config"
	"github.com/stylehaus/storefront-client/internal/models"
	"github.com/stylehaus/storefront-client/internal/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", slog.String("error", err.Error()))
	}

	configPath := flag.String("config", "", "path to the config file")
	flag.Parse()

	cfg := config.MustLoad(*configPath)

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	tokens, err := api.NewFileTokenStore(cfg.Tokens.Path)
	if err != nil {
		slog.Error("Failed to open token store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, tokens)

	var snapshots cache.Cache
	if cfg.Cache.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		snapshots = cache.NewRedisCache(redisClient, &cfg.Cache)

		defer func() {
			if err := snapshots.Close(); err != nil {
				slog.Warn("Failed to close snapshot cache", slog.String("error", err.Error()))
			}
		}()
	}

	app := store.New(client, snapshots, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout+5*time.Second)
	defer cancel()

	if err := run(ctx, app, client, args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, app *store.Store, client api.Client, args []string) error {
	switch args[0] {
	case "login":
		return cmdLogin(ctx, app, args[1:])
	case "logout":
		app.Auth.Logout(ctx)
		fmt.Println("logged out")

		return nil
	case "whoami":
		return cmdWhoami(ctx, app)
	case "products":
		return cmdProducts(ctx, app, args[1:])
	case "categories":
		return cmdCategories(ctx, app, args[1:])
	case "rfq":
		return cmdRFQ(ctx, app, args[1:])
	case "stats":
		return cmdStats(ctx, app)
	case "health":
		if err := client.HealthCheck(ctx); err != nil {
			return err
		}
		fmt.Println("backend is healthy")

		return nil
	default:
		usage()

		return fmt.Errorf("unknown command %q", args[0])
	}
}

func cmdLogin(ctx context.Context, app *store.Store, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password (or STOREFRONT_PASSWORD)")
	_ = fs.Parse(args)

	if *password == "" {
		*password = os.Getenv("STOREFRONT_PASSWORD")
	}

	if err := app.Auth.Login(ctx, models.LoginRequest{Username: *username, Password: *password}); err != nil {
		return err
	}

	session := app.Auth.Session()
	if !session.IsAdmin() {
		app.Auth.Logout(ctx)

		return fmt.Errorf("user %q is not an admin", *username)
	}

	fmt.Printf("logged in as %s (admin)\n", session.User.Username)

	return nil
}

func cmdWhoami(ctx context.Context, app *store.Store) error {
	app.Auth.VerifySession(ctx)

	session := app.Auth.Session()
	if !session.IsAuthenticated {
		fmt.Println("not logged in")

		return nil
	}

	fmt.Printf("%s (role: %s)\n", session.User.Username, session.User.Role)

	return nil
}

func requireAdmin(ctx context.Context, app *store.Store) error {
	app.Auth.VerifySession(ctx)

	if !app.Auth.Session().IsAdmin() {
		return fmt.Errorf("admin login required (run: storefrontctl login)")
	}

	return nil
}

func cmdProducts(ctx context.Context, app *store.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: storefrontctl products <list|create|delete>")
	}

	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("products list", flag.ExitOnError)
		search := fs.String("search", "", "search text")
		sortBy := fs.String("sort", "name", "sort key")
		category := fs.String("category", "", "main category slug")
		page := fs.Int("page", 1, "page number")
		_ = fs.Parse(args[1:])

		filters := models.ProductFilters{Search: *search, SortBy: *sortBy}

		var err error
		if *category != "" {
			err = app.Catalog.FetchProductsByCategory(ctx, *category, filters)
		} else {
			err = app.Catalog.FetchProducts(ctx, filters)
		}
		if err != nil {
			return err
		}

		app.Catalog.SetPage(*page)

		snap := app.Catalog.Snapshot()
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tACTIVE")
		for _, p := range app.Catalog.Page() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", p.ID, p.Name, p.CategoryName, p.IsActive)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("page %d of %d (%d total)\n", snap.Page, app.Catalog.PageCount(), snap.Pagination.Total)

		return nil
	case "create":
		if err := requireAdmin(ctx, app); err != nil {
			return err
		}

		fs := flag.NewFlagSet("products create", flag.ExitOnError)
		name := fs.String("name", "", "product name")
		categoryID := fs.String("category-id", "", "sub-category id")
		description := fs.String("description", "", "description")
		_ = fs.Parse(args[1:])

		created, err := app.Catalog.CreateProduct(ctx, models.CreateProductRequest{
			Name:        *name,
			CategoryID:  *categoryID,
			Description: *description,
		})
		if err != nil {
			return err
		}

		fmt.Printf("created product %s (%s)\n", created.Name, created.ID)

		return nil
	case "delete":
		if err := requireAdmin(ctx, app); err != nil {
			return err
		}

		if len(args) < 2 {
			return fmt.Errorf("usage: storefrontctl products delete <id>")
		}

		if err := app.Catalog.DeleteProduct(ctx, args[1]); err != nil {
			return err
		}

		fmt.Println("deleted", args[1])

		return nil
	default:
		return fmt.Errorf("unknown products command %q", args[0])
	}
}

func cmdCategories(ctx context.Context, app *store.Store, args []string) error {
	if len(args) == 0 || args[0] != "list" {
		return fmt.Errorf("usage: storefrontctl categories list")
	}

	if err := requireAdmin(ctx, app); err != nil {
		return err
	}

	if err := app.Catalog.FetchCategoriesForAdmin(ctx); err != nil {
		return err
	}

	snap := app.Catalog.Snapshot()
	for _, main := range snap.MainCategories {
		fmt.Printf("%s (%s)\n", main.Name, main.Slug)
		for _, sub := range snap.SubCategories[main.ID] {
			fmt.Printf("  - %s (%s)\n", sub.Name, sub.Slug)
		}
	}

	return nil
}

func cmdRFQ(ctx context.Context, app *store.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: storefrontctl rfq <list|set-status>")
	}

	if err := requireAdmin(ctx, app); err != nil {
		return err
	}

	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("rfq list", flag.ExitOnError)
		status := fs.String("status", "", "filter by status")
		_ = fs.Parse(args[1:])

		if err := app.RFQ.FetchRequests(ctx, models.RFQFilters{Status: models.RFQStatus(*status)}); err != nil {
			return err
		}

		snap := app.RFQ.Snapshot()
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCOMPANY\tSTATUS\tUPDATED")
		for _, r := range snap.Requests {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Name, r.Company, r.Status, r.UpdatedAt.Format(time.RFC3339))
		}

		return w.Flush()
	case "set-status":
		fs := flag.NewFlagSet("rfq set-status", flag.ExitOnError)
		notes := fs.String("notes", "", "status notes")
		_ = fs.Parse(args[1:])

		rest := fs.Args()
		if len(rest) < 2 {
			return fmt.Errorf("usage: storefrontctl rfq set-status <id> <status>")
		}

		req := models.UpdateRFQStatusRequest{Status: models.RFQStatus(rest[1]), Notes: *notes}
		if err := app.RFQ.UpdateStatus(ctx, rest[0], req); err != nil {
			return err
		}

		fmt.Printf("rfq %s -> %s\n", rest[0], rest[1])

		return nil
	default:
		return fmt.Errorf("unknown rfq command %q", args[0])
	}
}

func cmdStats(ctx context.Context, app *store.Store) error {
	if err := requireAdmin(ctx, app); err != nil {
		return err
	}

	if err := app.Admin.RefreshStats(ctx); err != nil {
		return err
	}

	stats := app.Admin.Snapshot().Stats
	fmt.Printf("products: %d\ncategories: %d\nrfq requests: %d\nnew rfq: %d\n",
		stats.Products, stats.Categories, stats.RFQRequests, stats.NewRFQ)

	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: storefrontctl [-config path] <command>

commands:
  login -u <user> [-p <password>]
  logout
  whoami
  products list [-search s] [-sort key] [-category slug] [-page n]
  products create -name <name> -category-id <id> [-description d]
  products delete <id>
  categories list
  rfq list [-status s]
  rfq set-status [-notes n] <id> <status>
  stats
  health`)
}
