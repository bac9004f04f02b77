package main

import (
	"log"

	"github.com/hushsocial/hush/cmd/feed/cmd"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
