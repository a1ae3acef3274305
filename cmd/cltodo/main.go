// Command cltodo is a personal todo tracker backed by an embedded SQLite
// database, scoped to the enclosing repository or to the user.
package main

import "github.com/dukaforge/cltodo/internal/cli"

func main() {
	cli.Execute()
}
