package main

import "github.com/flatvec/flatvec/cmd/flatvec/cmd"

func main() {
	cmd.Execute()
}
