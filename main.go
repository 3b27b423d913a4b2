package main

import "github.com/pbakker/huddle/cmd"

func main() {
	cmd.Execute()
}
