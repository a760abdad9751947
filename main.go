package main

import "line-checker/cmd"

func main() {
	cmd.Execute()
}
