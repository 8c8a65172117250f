package main

import "deedles.dev/xrect/cmd"

func main() {
	cmd.Execute()
}
