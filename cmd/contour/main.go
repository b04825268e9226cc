package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rconstant/contour/internal/contour"
)

func main() {
	contour.Debug = os.Getenv("DEBUG") != ""

	if len(os.Args) != 4 {
		fmt.Fprintf(os.Stderr, "usage: %s <input> <output> <threads>\n", os.Args[0])
		os.Exit(1)
	}
	workers, err := strconv.Atoi(os.Args[3])
	if err != nil || workers < 1 {
		fmt.Fprintln(os.Stderr, "threads must be a positive integer")
		os.Exit(1)
	}

	if err := contour.Run(os.Args[1], os.Args[2], workers); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
