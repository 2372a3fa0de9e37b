package main

import "github.com/stellargrid/tentai-show/cmd"

func main() {
	cmd.Execute()
}
