package main

import "github.com/Akira98000/mp3midi/cmd"

func main() {
	cmd.Execute()
}
