package main

// Version is the release version, set at build time with
//
//	-ldflags "-X main.Version=v1.2.3"
var Version = "dev"
