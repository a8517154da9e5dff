package main

import "github.com/nutrimind/nutrimind/cmd"

func main() {
	cmd.Execute()
}
