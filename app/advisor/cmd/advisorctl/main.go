package main

import "github.com/iWorld-y/career_advisor/app/advisor/internal/cli"

func main() {
	cli.Execute()
}
