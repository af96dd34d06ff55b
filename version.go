package main

import "fmt"

var (
	gitSHA1   string = "unknown"
	buildDate string = "unknown"
)

func version() string {
	return fmt.Sprintf("%s (built %s)", gitSHA1, buildDate)
}
