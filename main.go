package main

import (
	"askdoc/cmd"
	"askdoc/src/log"
)

func main() {
	defer log.Sync()
	cmd.Execute()
}
