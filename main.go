package main

import "streakbot/cmd"

func main() {
	cmd.Execute()
}
