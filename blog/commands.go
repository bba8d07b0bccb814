// Package blog implements the quill CLI commands on top of the stores and
// the blog service.
package blog

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"quill/app/config"
	"quill/app/logging"
	"quill/app/models"
	"quill/app/services"
	"quill/app/storage"
	"quill/app/stores"
)

// HandleCommand dispatches a quill subcommand.
func HandleCommand(args []string) {
	if len(args) < 1 {
		fmt.Println("Error: command required")
		os.Exit(1)
	}

	cmd := args[0]
	switch cmd {
	case "init":
		initDb()
	case "clean":
		clean()
	case "backup":
		backup()
	case "restore":
		if len(args) < 2 {
			fmt.Println("Error: backup file path required for restore")
			os.Exit(1)
		}
		restore(args[1])
	case "register":
		register(args[1:])
	case "login":
		login(args[1:])
	case "logout":
		withService(func(svc *services.BlogService) error {
			if err := svc.Logout(); err != nil {
				return err
			}
			fmt.Println("Signed out")
			return nil
		})
	case "whoami":
		whoami()
	case "post":
		createPost(args[1:])
	case "edit":
		editPost(args[1:])
	case "rm":
		deletePost(args[1:])
	case "show":
		showPost(args[1:])
	case "feed":
		withService(func(svc *services.BlogService) error {
			posts, err := svc.Feed()
			if err != nil {
				return err
			}
			printPosts(posts)
			return nil
		})
	case "mine":
		withService(func(svc *services.BlogService) error {
			posts, err := svc.MyPosts()
			if err != nil {
				return err
			}
			printPosts(posts)
			return nil
		})
	case "liked":
		withService(func(svc *services.BlogService) error {
			posts, err := svc.LikedPosts()
			if err != nil {
				return err
			}
			printPosts(posts)
			return nil
		})
	case "like":
		toggleLike(args[1:], true)
	case "unlike":
		toggleLike(args[1:], false)
	default:
		fmt.Printf("Unknown command: %s\n", cmd)
		os.Exit(1)
	}
}

func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

// withService opens the database, builds the service and runs fn against
// it, translating the error taxonomy into user-facing messages.
func withService(fn func(svc *services.BlogService) error) {
	cfg := loadConfig()
	medium, err := storage.Open(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer medium.Close()

	logger := logging.New(os.Stderr, cfg.LogLevel)
	svc := services.NewBlogService(
		stores.NewAccountStore(medium),
		stores.NewPostStore(medium),
		logger,
	)

	if err := fn(svc); err != nil {
		switch {
		case errors.Is(err, services.ErrSignedOut):
			fmt.Println("You are not signed in. Use 'quill login' first.")
		case errors.Is(err, services.ErrNotAuthor):
			fmt.Println("Only the author may modify this post.")
		case errors.Is(err, stores.ErrEmailTaken):
			fmt.Println("Email already in use.")
		case errors.Is(err, stores.ErrInvalidCredentials):
			fmt.Println("Invalid email or password.")
		case errors.Is(err, stores.ErrNotFound):
			fmt.Println("Post not found.")
		default:
			log.Fatalf("Error: %v", err)
		}
		os.Exit(1)
	}
}

func register(args []string) {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	username := fs.String("u", "", "username")
	email := fs.String("e", "", "email")
	password := fs.String("p", "", "password")
	fs.Parse(args)

	withService(func(svc *services.BlogService) error {
		account, err := svc.Register(*username, *email, *password)
		if err != nil {
			return err
		}
		fmt.Printf("Welcome, %s! You are now signed in.\n", account.Username)
		return nil
	})
}

func login(args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("e", "", "email")
	password := fs.String("p", "", "password")
	fs.Parse(args)

	withService(func(svc *services.BlogService) error {
		account, err := svc.Login(*email, *password)
		if err != nil {
			return err
		}
		fmt.Printf("Welcome back, %s!\n", account.Username)
		return nil
	})
}

func whoami() {
	withService(func(svc *services.BlogService) error {
		account, err := svc.CurrentAccount()
		if err != nil {
			return err
		}
		if account == nil {
			fmt.Println("Not signed in")
			return nil
		}
		fmt.Printf("%s <%s>\n", account.Username, account.Email)
		return nil
	})
}

func createPost(args []string) {
	fs := flag.NewFlagSet("post", flag.ExitOnError)
	title := fs.String("t", "", "post title")
	content := fs.String("c", "", "post content")
	fs.Parse(args)

	withService(func(svc *services.BlogService) error {
		post, err := svc.CreatePost(*title, *content)
		if err != nil {
			return err
		}
		fmt.Printf("Published %q (%s)\n", post.Title, post.ID)
		return nil
	})
}

func editPost(args []string) {
	if len(args) < 1 {
		fmt.Println("Error: post id required")
		os.Exit(1)
	}
	id := args[0]
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	title := fs.String("t", "", "post title")
	content := fs.String("c", "", "post content")
	fs.Parse(args[1:])

	withService(func(svc *services.BlogService) error {
		post, err := svc.UpdatePost(id, *title, *content)
		if err != nil {
			return err
		}
		fmt.Printf("Updated %q\n", post.Title)
		return nil
	})
}

func deletePost(args []string) {
	if len(args) < 1 {
		fmt.Println("Error: post id required")
		os.Exit(1)
	}
	id := args[0]

	fmt.Print("Are you sure you want to delete this post? This cannot be undone. [y/N] ")
	var response string
	fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		fmt.Println("Operation cancelled")
		return
	}

	withService(func(svc *services.BlogService) error {
		if err := svc.DeletePost(id); err != nil {
			return err
		}
		fmt.Println("Post deleted")
		return nil
	})
}

func showPost(args []string) {
	if len(args) < 1 {
		fmt.Println("Error: post id required")
		os.Exit(1)
	}
	id := args[0]

	withService(func(svc *services.BlogService) error {
		post, err := svc.GetPost(id)
		if err != nil {
			return err
		}
		fmt.Printf("%s\nby %s on %s", post.Title, post.Author, post.CreatedAt.Format("Jan 2, 2006"))
		if !post.UpdatedAt.Equal(post.CreatedAt) {
			fmt.Printf(" (edited %s)", post.UpdatedAt.Format("Jan 2, 2006"))
		}
		fmt.Printf("\n\n%s\n\n%s\n", post.Content, likeCount(post))
		return nil
	})
}

func toggleLike(args []string, like bool) {
	if len(args) < 1 {
		fmt.Println("Error: post id required")
		os.Exit(1)
	}
	id := args[0]

	withService(func(svc *services.BlogService) error {
		if like {
			if err := svc.Like(id); err != nil {
				return err
			}
			fmt.Println("Liked")
			return nil
		}
		if err := svc.Unlike(id); err != nil {
			return err
		}
		fmt.Println("Unliked")
		return nil
	})
}

func printPosts(posts []*models.Post) {
	if len(posts) == 0 {
		fmt.Println("No posts yet")
		return
	}
	for _, post := range posts {
		fmt.Printf("%s  %q by %s, %s (%s)\n",
			post.ID, post.Title, post.Author,
			post.CreatedAt.Format("Jan 2, 2006"), likeCount(post))
	}
}

func likeCount(post *models.Post) string {
	if len(post.Likes) == 1 {
		return "1 like"
	}
	return fmt.Sprintf("%d likes", len(post.Likes))
}

// initDb initializes a new empty database
func initDb() {
	cfg := loadConfig()
	if _, err := os.Stat(cfg.DataDir); err == nil {
		fmt.Println("Database already exists. Use 'clean' first if you want to reinitialize.")
		return
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}

	medium, err := storage.Open(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer medium.Close()

	fmt.Println("Database initialized successfully")
}

// clean removes the database
func clean() {
	cfg := loadConfig()
	if _, err := os.Stat(cfg.DataDir); os.IsNotExist(err) {
		fmt.Println("Database is already clean (does not exist)")
		return
	}

	fmt.Print("Are you sure you want to clean the database? This cannot be undone. [y/N] ")
	var response string
	fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		fmt.Println("Operation cancelled")
		return
	}

	if err := os.RemoveAll(cfg.DataDir); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("Database cleaned successfully")
}

// backup creates a backup of the database
func backup() {
	cfg := loadConfig()
	if _, err := os.Stat(cfg.DataDir); os.IsNotExist(err) {
		fmt.Println("No database exists to backup")
		return
	}

	backupDir := filepath.Join(filepath.Dir(cfg.DataDir), "backups")
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		log.Fatalf("Failed to create backup directory: %v", err)
	}

	medium, err := storage.Open(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer medium.Close()

	backupFile := filepath.Join(backupDir, fmt.Sprintf("backup_%d.db", time.Now().Unix()))
	f, err := os.Create(backupFile)
	if err != nil {
		log.Fatalf("Failed to create backup file: %v", err)
	}
	defer f.Close()

	if err := medium.Backup(f); err != nil {
		log.Fatalf("Failed to backup database: %v", err)
	}

	fmt.Printf("Database backed up successfully to %s\n", backupFile)
}

// restore restores the database from a backup
func restore(backupFile string) {
	cfg := loadConfig()
	if _, err := os.Stat(backupFile); os.IsNotExist(err) {
		fmt.Printf("Backup file does not exist: %s\n", backupFile)
		return
	}

	if _, err := os.Stat(cfg.DataDir); err == nil {
		fmt.Print("Existing database found. Do you want to replace it? [y/N] ")
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Operation cancelled")
			return
		}
		if err := os.RemoveAll(cfg.DataDir); err != nil {
			log.Fatalf("Failed to remove existing database: %v", err)
		}
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}

	medium, err := storage.Open(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer medium.Close()

	f, err := os.Open(backupFile)
	if err != nil {
		log.Fatalf("Failed to open backup file: %v", err)
	}
	defer f.Close()

	if err := medium.Restore(f); err != nil {
		log.Fatalf("Failed to restore database: %v", err)
	}

	fmt.Println("Database restored successfully")
}
