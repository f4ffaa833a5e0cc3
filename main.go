package main

import "github.com/maikeru-desu/genius-todolist/cmd"

func main() {
	cmd.Execute()
}
