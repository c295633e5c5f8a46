package main

import "github.com/Digital-Shane/anim-tidy/internal/cmd"

func main() {
	cmd.Execute()
}
