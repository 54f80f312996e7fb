package main

// General API documentation for swaggo. Run `swag init -g cmd/assetd/docs.go`
// to generate docs, then build with -tags=swagger to serve them.
//
// @title           assetd API
// @version         1.0
// @description     HTTP API for game asset bundle management and resolution.
//
// @contact.name   assetd maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
