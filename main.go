package main

import "realtime-chat-backend/config"

func main() {
	config.RunServer()
}
