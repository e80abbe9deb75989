package main

import "github.com/MaximKing1/iron-session/cmd/ironseal/cmd"

func main() {
	cmd.Execute()
}
