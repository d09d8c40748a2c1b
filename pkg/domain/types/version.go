package types

// Version is overwritten at build time with -ldflags "-X ...types.Version=..."
var Version = "dev"
