// main.go
package main

import "theater-reservation/cmd"

func main() {
	cmd.Execute()
}
