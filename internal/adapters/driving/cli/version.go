package cli

// version is set at build time with -ldflags "-X".
var version = "dev"

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("minigrep version {{.Version}}\n")
}
