package cli_test

import (
	"fmt"
	"log"

	"github.com/workbench-dev/workbench/internal/cli"
)

// Example demonstrates parsing a typical invocation.
func Example() {
	args, err := cli.Parse([]string{"-r", "--log", "debug", "notes.md"})
	if err != nil {
		log.Fatal(err)
	}

	level, _ := args.LogLevel()
	fmt.Println("reuse window:", args.ReuseWindow())
	fmt.Println("log level:", level)
	fmt.Println("paths:", args.Positional)

	// Output:
	// reuse window: true
	// log level: debug
	// paths: [notes.md]
}
