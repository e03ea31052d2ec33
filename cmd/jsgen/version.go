package main

const jsgenVersion = "0.4.0"
