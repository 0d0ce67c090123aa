package main

import "github.com/rubenboadana/WoffuAutomatizer/cmd"

func main() {
	cmd.Execute()
}
