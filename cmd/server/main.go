package main

import "github.com/Shiminize/lab-jewelry-genz-sub019/internal/app"

func main() {
	app.Run()
}
