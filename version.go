package adoctree

// Version is the adoctree release version. Override it at build time with
// -ldflags "-X github.com/rolfedh/adoctree.Version=v1.2.3".
var Version = "0.1.0-dev"
