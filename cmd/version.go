package cmd

// Version is the version reported by xrect --version. It is set at
// build time with -ldflags "-X deedles.dev/xrect/cmd.Version=...".
var Version = "dev"
