package main

import "github.com/OpenTraceLab/pihwinfo/cmd/pihw/cmd"

func main() {
	cmd.Execute()
}
