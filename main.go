package main

import "github.com/alexiusacademia/structcalc/cmd"

func main() {
	cmd.Execute()
}
