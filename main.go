package main

import "layout-catalog/cmd"

func main() {
	cmd.Execute()
}
