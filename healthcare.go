package main

import "github.com/LuizaMunis/HealthCare-sub000/api"

func main() {
	api.MainLoop()
}
