package version

// version is set at build time with -ldflags "-X github.com/cbodonnell/flagmaster/pkg/version.version=..."
var version = "dev"

func Get() string {
	return version
}
