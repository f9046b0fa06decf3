package main

import (
	"fmt"
	"os"

	"tradelog/internal/i18n"
)

var version = "1.0.0"

func main() {
	if err := newApp().execute(); err != nil {
		fmt.Fprintln(os.Stderr, i18n.FormatError(err))
		os.Exit(1)
	}
}
