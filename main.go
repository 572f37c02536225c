package main

import "github.com/fieldtally/observer-api/cmd"

// @title           Observer API
// @version         1.0.0
// @description     A multi-segment timeline and annotation engine for observational video review
// @contact.name    API Support
// @contact.url     https://github.com/fieldtally/observer-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
