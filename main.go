package main

import "github.com/iksnae/messenger-export/cmd"

func main() {
	cmd.Execute()
}
