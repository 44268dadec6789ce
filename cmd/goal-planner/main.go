// cmd/goal-planner/main.go
package main

import (
	"os"

	"goal-planner/cmd/goal-planner/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
