package main

import "github.com/termfolio/folio/cmd"

func main() {
	cmd.Execute()
}
