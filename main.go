package main

import "toko-admin/internal/commands"

func main() {
	commands.Execute()
}
