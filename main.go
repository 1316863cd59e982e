package main

import "github.com/alexiusacademia/hydroflow/cmd"

func main() {
	cmd.Execute()
}
