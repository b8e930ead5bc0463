package main

import "github.com/portal-comunidad/portal-api/cmd"

func main() {
	cmd.Execute()
}
