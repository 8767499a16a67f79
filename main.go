package main

import "github.com/wundergraph/rtkquery-codegen/cmd"

func main() {
	cmd.Execute()
}
