// Example program demonstrating the pubresolve library API.
//
// Run from the repo root:
//
//	go run ./example/
//
// With network detection (set GITHUB_TOKEN first):
//
//	GITHUB_TOKEN=ghp_xxx go run ./example/
package main

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/MyCarrier-DevOps/go-pubresolve/pkg/pubresolve"
)

func main() {
	result, err := pubresolve.Resolve(pubresolve.Options{
		Path:         ".",
		AllowNetwork: os.Getenv("GITHUB_TOKEN") != "",
	})
	if err != nil {
		log.Fatalf("resolution failed: %v", err)
	}

	fmt.Println("=== Resolved Configuration ===")

	keys := make([]string, 0, len(result.Variables))
	for k := range result.Variables {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Printf("%-40s %s\n", k, result.Variables[k])
	}

	fmt.Println()
	fmt.Print(result.Report)

	for _, warning := range result.DetectionWarnings {
		fmt.Printf("warning: %s\n", warning)
	}
}
