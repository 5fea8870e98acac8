package commands

import "fmt"

func HandleHelp(_ []string) {
	fmt.Print(`tgimg: upload gateway that keeps files in a Telegram chat.

Usage:
  tgimg run <path/to/config.yml>   start the HTTP server
  tgimg version                    print the version
  tgimg help                       show this message
`) //nolint
}
