package main

import "github.com/CASL0/scraping-tech-books/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
