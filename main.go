package main

import (
	"fmt"
	"os"
	"strings"

	"quill/blog"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("quill version %s\n", cliVersion)
	default:
		blog.HandleCommand(os.Args[1:])
	}
}

func printHelp() {
	helpText := `Usage: quill <command> [options]

Account commands:
  register -u <name> -e <email> -p <password>   Create an account and sign in.
  login -e <email> -p <password>                Sign in.
  logout                                        Sign out.
  whoami                                        Show the signed-in account.

Post commands:
  post -t <title> -c <content>                  Publish a new post.
  edit <id> -t <title> -c <content>             Edit one of your posts.
  rm <id>                                       Delete one of your posts.
  show <id>                                     Show a single post.
  feed                                          List all posts, newest first.
  mine                                          List your posts.
  liked                                         List posts you liked.
  like <id>                                     Like a post.
  unlike <id>                                   Withdraw a like.

Database commands:
  init                                          Initialize a new empty database.
  clean                                         Remove the database.
  backup                                        Create a backup of the database.
  restore <file>                                Restore the database from a backup.

Other:
  help                                          Display this help message.
  version                                       Show version information.
`
	fmt.Println(helpText)
}
