package main

import "github.com/Alijeyrad/glowdesk_backend/cmd"

func main() {
	cmd.Execute()
}
