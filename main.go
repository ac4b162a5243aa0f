package main

import "github.com/itparc/asset-management/cmd"

func main() {
	cmd.Execute()
}
