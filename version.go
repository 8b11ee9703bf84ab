package dpcl

// Version is the dpcl release. Overridden at build time with
// -ldflags "-X github.com/aretw0/dpcl.Version=..."
var Version = "0.1.0"
