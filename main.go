package main

import "github.com/frahmantamala/hr-records/cmd"

func main() {
	cmd.Execute()
}
