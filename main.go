package main

import "github.com/zheng/doxgraph/cmd"

func main() {
	cmd.Execute()
}
