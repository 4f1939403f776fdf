package main

// version is overwritten at build time, e.g. `-ldflags "-X main.version=v1.2.3"`
var version = "development"
