// Command hashtoken prints a bcrypt hash suitable for WEBHOOK_AUTH_TOKEN_HASH.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"form-relay-api/internal/util"
)

func main() {
	token := ""
	if len(os.Args) > 1 {
		token = os.Args[1]
	} else {
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		token = strings.TrimSpace(line)
	}
	if token == "" {
		fmt.Fprintln(os.Stderr, "usage: hashtoken <token>  (or pipe the token on stdin)")
		os.Exit(2)
	}

	hashed, err := util.HashToken(token)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hash failed:", err)
		os.Exit(1)
	}
	fmt.Println(hashed)
}
