package main

// _version is the version of snip2html.
// Release builds override this with -ldflags.
var _version = "dev"
