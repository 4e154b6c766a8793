package main

import "github.com/MyCarrier-DevOps/go-pubresolve/cmd"

func main() {
	cmd.Execute()
}
