package main

import (
	"os"

	"github.com/thenoetrevino/blogdb/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
