package main

import "github.com/Meerasha8/GeoMeet-Backend/cmd"

func main() {
	cmd.Execute()
}
