// Package misc keeps build time information injected via ldflags.
package misc

var (
	appName = "cssb"
	version = "development"
	gitHash = "unknown"
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
