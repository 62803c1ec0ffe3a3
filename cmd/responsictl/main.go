package main

import "responsivas/cmd/responsictl/cmd"

func main() {
	cmd.Execute()
}
