package main

import "github.com/KaramelBytes/ridestat-cli/cmd"

func main() {
	cmd.Execute()
}
