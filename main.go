package main

import "ams-coverage/cmd"

func main() {
	cmd.Execute()
}
