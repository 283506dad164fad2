package main

import (
	"github.com/victorhaugaard/sugar-reset-sub000/config"
	"github.com/victorhaugaard/sugar-reset-sub000/routes"
	"github.com/victorhaugaard/sugar-reset-sub000/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	r := routes.SetupRouter()
	r.Run(":8080")
}
