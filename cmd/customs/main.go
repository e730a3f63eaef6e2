package main

import "github.com/aalvaropc/customs/internal/cli"

func main() {
	cli.Execute()
}
