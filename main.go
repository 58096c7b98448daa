package main

import "github.com/josephlewis42/jartos/cmd"

func main() {
	cmd.Execute()
}
