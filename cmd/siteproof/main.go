package main

import "github.com/juggajay/siteproof-v2-sub000/internal/cli"

func main() {
	cli.Execute()
}
