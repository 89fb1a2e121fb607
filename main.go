package main

import "github.com/dtcc-platform/dtcc-wrapper-tetgen/cmd"

func main() {
	cmd.Execute()
}
