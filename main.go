package main

import "github.com/spectralmech/spectelast/cmd"

func main() {
	cmd.Execute()
}
