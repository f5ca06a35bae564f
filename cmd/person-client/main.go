package main

import "github.com/callibrity/person-workshop/internal/cli"

func main() {
	cli.Execute()
}
