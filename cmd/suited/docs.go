package main

// General API documentation for swaggo. Run `make swagger-gen` to generate docs.
//
// @title           suited API
// @version         1.0
// @description     HTTP API for registering, loading, and unloading memory-budgeted component suites.
//
// @contact.name   suited maintainers
// @contact.url    https://github.com/your-org/suited
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
