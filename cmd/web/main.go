// @title           hire-nexus API
// @version         1.0
// @description     Freelance marketplace backend: accounts, job postings, applications, hiring requests and direct messaging.
// @host            localhost:4000
// @BasePath        /

package main

import "hirenexus_backend/internal/app"

func main() {
	app.Run()
}
