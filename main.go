package main

import "github.com/apiary-go/googleapis/cmd"

func main() {
	cmd.Execute()
}
