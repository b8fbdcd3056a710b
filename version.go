package lox

// Version is reported by the CLI banner and `pylox -v`.
const Version = "0.1.0"
