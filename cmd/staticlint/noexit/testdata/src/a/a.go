package main

import (
	"log"
	xos "os"
	"os"
)

func run() error { return nil }

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}

	defer os.Exit(0) // want `вызов os.Exit в пакете main запрещён`

	xos.Exit(1) // want `вызов os.Exit в пакете main запрещён`

	exit := os.Exit // want `использование os.Exit в пакете main запрещено`
	exit(2)
}

func helper() {
	os.Exit(3) // want `вызов os.Exit в пакете main запрещён`
}
