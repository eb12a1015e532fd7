package main

import (
	"github.com/alvinwquach/macronutrient-calculator/config"
	"github.com/alvinwquach/macronutrient-calculator/routes"
)

func main() {
	addr := config.Load()
	r := routes.SetupRouter()
	r.Run(addr)
}
