package main

import (
	"log"
	"os"
)

func main() {
	logger := log.New(os.Stderr, "[finctl] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Printf("%v", err)
		os.Exit(1)
	}
}
