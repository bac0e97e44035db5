// FILE: cmd/checkora-engine/main.go
// Package main implements the Checkora move-legality oracle. It reads a
// single request line from stdin, writes a single response line to
// stdout, and exits. The hosting service spawns one invocation per query.
package main

import (
	"bufio"
	"fmt"
	"os"

	"checkora/internal/protocol"
)

func main() {
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return
	}

	if resp := protocol.Execute(scanner.Text()); resp != "" {
		fmt.Println(resp)
	}
}
