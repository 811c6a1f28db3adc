package main

import "github.com/chrisdamba/dispatchlens/cmd"

func main() {
	cmd.Execute()
}
