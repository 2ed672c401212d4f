package main

import "github.com/LuizaMunis/HealthCare-sub000/cmd/healthctl/command"

func main() {
	command.Execute()
}
