package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/carebridge/navigator-console/internal/gateway"
	"github.com/carebridge/navigator-console/internal/listview"
	"github.com/carebridge/navigator-console/internal/notify"
	"github.com/carebridge/navigator-console/internal/resources"
	"github.com/carebridge/navigator-console/internal/session"
	"github.com/carebridge/navigator-console/pkg/config"
	"github.com/carebridge/navigator-console/pkg/logger"
	"github.com/carebridge/navigator-console/pkg/types"
)

func main() {
	// Load .env for local development; a missing file is fine
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)

	// Initialize the session store
	sessionStore, err := session.NewStore(cfg.Session.StorePath, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize session store")
	}

	// Initialize the API gateway client and resource services
	client := gateway.NewClient(&cfg.API, sessionStore, logger)
	authService := resources.NewAuthResource(client, sessionStore, logger)
	memberService := resources.NewMemberResource(client, logger)
	notificationService := resources.NewNotificationResource(client, logger)

	ctx := context.Background()

	if !sessionStore.IsAuthenticated() {
		email := os.Getenv("NAVIGATOR_EMAIL")
		password := os.Getenv("NAVIGATOR_PASSWORD")
		if email == "" || password == "" {
			logger.Fatal("No session found; set NAVIGATOR_EMAIL and NAVIGATOR_PASSWORD to log in")
		}

		login, err := authService.Login(ctx, email, password)
		if err != nil {
			logger.WithError(err).Fatal("Login failed")
		}
		logger.WithField("user", login.User.Email).Info("Logged in")
	}

	user, err := sessionStore.CurrentUser()
	if err != nil {
		logger.WithError(err).Fatal("Failed to read current user")
	}
	fmt.Printf("Signed in as %s <%s>\n", user.Name, user.Email)

	// Show the first page of members assigned to this navigator
	members := listview.NewMembersController(memberService, cfg.List.PageSize, logger)
	done := make(chan struct{})
	members.SetListener(func(snapshot listview.Snapshot[types.Member]) {
		switch snapshot.State {
		case listview.StateSuccess:
			fmt.Printf("Members (page 1 of %d):\n", pages(snapshot.Pagination))
			for _, m := range snapshot.Items {
				fmt.Printf("  %s %s  %s\n", m.FirstName, m.LastName, m.Phone)
			}
			close(done)
		case listview.StateError:
			if gateway.LoginRedirect(snapshot.Err) {
				fmt.Println("Session expired; please log in again.")
			} else {
				fmt.Printf("Failed to load members: %v\n", snapshot.Err)
			}
			close(done)
		}
	})
	members.SetFilter("navigatorId", user.ID)
	members.ApplyFilters()
	<-done
	members.Close()

	// Show unread notifications
	poller := notify.NewPoller(notificationService, logger)
	if err := poller.Start(ctx); err != nil {
		logger.WithError(err).Warn("Failed to load notifications")
		return
	}
	fmt.Printf("Unread notifications: %d\n", poller.UnreadCount())
}

// pages returns the page count, defaulting to 1 when the backend sent
// no pagination envelope
func pages(p *types.Pagination) int {
	if p == nil || p.Pages == 0 {
		return 1
	}
	return p.Pages
}
