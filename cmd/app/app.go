package main

import (
	"github.com/emporiodaserra/storefront-backend/internal/app"
)

//	@title			Empório da Serra Storefront API
//	@version		1.0
//	@description	API do catálogo, carrinho e checkout da loja

//	@host		localhost:8080
//	@BasePath	/api/v1
func main() {
	app.Run()
}
