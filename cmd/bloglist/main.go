// Command bloglist is an interactive terminal client for the blog API:
// log in, list blogs by popularity, create, like and delete.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"bloglist/internal/api"
	"bloglist/internal/authz"
	"bloglist/internal/bloglist"
	"bloglist/internal/config"
	"bloglist/internal/notify"
	"bloglist/internal/session"
	"bloglist/internal/storage"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store, err := newStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open session storage: %v", err)
	}

	client := api.NewClient(cfg.APIURL, &http.Client{Timeout: cfg.Timeout()})
	sessions := session.NewManager(store, client)
	collection := bloglist.NewCollection(client)
	notifier := notify.NewNotifier(notify.DefaultDuration)

	ctx := context.Background()

	if restored := sessions.Restore(ctx); restored != nil {
		fmt.Printf("%s logged in\n", restored.Username)
	}
	if _, err := collection.LoadAll(ctx); err != nil {
		fmt.Printf("could not reach %s: %v (retry with 'list')\n", cfg.APIURL, err)
	}

	fmt.Println("bloglist - type 'help' for commands")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		printNotification(notifier)
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "help":
			printHelp()
		case "quit", "exit":
			return

		case "login":
			if len(args) != 2 {
				fmt.Println("usage: login <username> <password>")
				continue
			}
			if _, err := sessions.Login(ctx, args[0], args[1]); err != nil {
				notifier.Show("Wrong credentials.")
				continue
			}
			notifier.Show("Logged in successfully.")

		case "logout":
			sessions.Logout(ctx)
			notifier.Show("Logged out successfully.")

		case "list":
			blogs, err := collection.LoadAll(ctx)
			if err != nil {
				fmt.Printf("failed to load blogs: %v\n", err)
				continue
			}
			current := sessions.Current()
			for _, blog := range blogs {
				marker := " "
				if authz.CanDelete(blog, current) {
					marker = "*"
				}
				fmt.Printf("%s [%3d likes] %s by %s (%s) id=%s\n",
					marker, blog.Likes, strings.TrimSpace(blog.Title), blog.Author, blog.User.Username, blog.ID)
			}

		case "create":
			parts := strings.SplitN(strings.Join(args, " "), "|", 3)
			if len(parts) != 3 {
				fmt.Println("usage: create <title>|<author>|<url>")
				continue
			}
			if sessions.Current() == nil {
				fmt.Println("log in first")
				continue
			}
			if _, err := collection.Create(ctx, strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2])); err != nil {
				notifier.Show(fmt.Sprintf("Failed to add blog: %s", err.Error()))
				continue
			}
			notifier.Show("Blog added successfully")

		case "like":
			if len(args) != 1 {
				fmt.Println("usage: like <id>")
				continue
			}
			if _, err := collection.Like(ctx, args[0]); err != nil {
				notifier.Show("Failed to like blog")
				continue
			}
			notifier.Show("Blog liked successfully.")

		case "delete":
			if len(args) != 1 {
				fmt.Println("usage: delete <id>")
				continue
			}
			if err := collection.Delete(ctx, args[0], sessions.Current()); err != nil {
				notifier.Show("Failed to delete blog")
				continue
			}
			notifier.Show("Blog deleted successfully.")

		default:
			fmt.Printf("unknown command %q, type 'help'\n", cmd)
		}
	}
}

func newStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.SessionStore {
	case "redis":
		return storage.NewRedisStore(cfg.RedisURL)
	case "memory":
		return storage.NewMemoryStore(), nil
	default:
		return storage.NewFileStore(cfg.SessionFile)
	}
}

func printNotification(n *notify.Notifier) {
	if message, ok := n.Current(); ok {
		fmt.Printf("! %s\n", message)
	}
}

func printHelp() {
	fmt.Println(`commands:
  login <username> <password>
  logout
  list                          (* marks blogs you may delete)
  create <title>|<author>|<url>
  like <id>
  delete <id>
  quit`)
}
