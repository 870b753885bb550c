package main

import "github.com/caner-cetin/amws-order/cmd"

func main() {
	cmd.Execute()
}
